package commands

import (
	"context"
	"time"

	"freight/internal/pkg/errs"
)

// RespondVendorRequestCommandHandler handles the business logic for vendor
// responses to enquiry requests. The first response moves the enquiry to the
// vendor-responses stage; later responses leave it there.
type RespondVendorRequestCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

// NewRespondVendorRequestCommandHandler creates a handler for vendor
// responses.
func NewRespondVendorRequestCommandHandler(uowFactory EnquiryUoWFactory) RespondVendorRequestCommandHandler {
	return RespondVendorRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor response command.
func (h *RespondVendorRequestCommandHandler) Handle(ctx context.Context, cmd RespondVendorRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := uow.VendorRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if !request.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewObjectNotFoundError("requestID", cmd.RequestID())
	}

	now := time.Now().UTC()

	switch cmd.Action() {
	case VendorResponseAccept:
		err = request.Accept(now)
	case VendorResponseCounter:
		err = request.Counter(*cmd.CounterPrice(), now)
	case VendorResponseReject:
		err = request.Reject(now)
	case VendorResponseUnknown:
		err = errs.NewValueIsInvalidError("action")
	}
	if err != nil {
		return err
	}

	if err = uow.VendorRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	aggregate, err := uow.EnquiryRepository().Get(ctx, request.EnquiryID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkVendorResponded(); err != nil {
		return err
	}

	if err = uow.EnquiryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
