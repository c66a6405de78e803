package commands

import (
	"context"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/pkg/errs"
)

// SendToVendorsCommandHandler handles the business logic for a manager's
// fan-out of an enquiry to vendors. One VendorRequest per vendor is created
// and the enquiry moves to the sent-to-vendors stage, all atomically.
type SendToVendorsCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

// NewSendToVendorsCommandHandler creates a handler for vendor fan-out.
func NewSendToVendorsCommandHandler(uowFactory EnquiryUoWFactory) SendToVendorsCommandHandler {
	return SendToVendorsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fan-out command.
func (h *SendToVendorsCommandHandler) Handle(ctx context.Context, cmd SendToVendorsCommand) error {
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

	aggregate, err := uow.EnquiryRepository().Get(ctx, cmd.EnquiryID())
	if err != nil {
		return err
	}

	if aggregate.ManagerID() == nil || !aggregate.ManagerID().IsEqual(cmd.ManagerID()) {
		return errs.NewObjectNotFoundError("enquiryID", cmd.EnquiryID())
	}

	for _, v := range cmd.Vendors() {
		request, reqErr := enquiry.NewVendorRequest(aggregate.ID(), v.VendorID,
			cmd.ManagerID(), v.SuggestedPrice, v.Notes, v.Urgency)
		if reqErr != nil {
			return reqErr
		}

		if err = uow.VendorRequestRepository().Add(ctx, request); err != nil {
			return err
		}
	}

	if err = aggregate.MarkSentToVendors(); err != nil {
		return err
	}

	if err = uow.EnquiryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
