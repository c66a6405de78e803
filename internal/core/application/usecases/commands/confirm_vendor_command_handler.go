package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// ConfirmVendorCommandHandler handles the business logic for manager
// confirmation of a winning vendor. The winning request is accepted, every
// other request on the enquiry is rejected, and the enquiry is confirmed,
// all in one transaction.
type ConfirmVendorCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

// NewConfirmVendorCommandHandler creates a handler for vendor confirmation.
func NewConfirmVendorCommandHandler(uowFactory EnquiryUoWFactory) ConfirmVendorCommandHandler {
	return ConfirmVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor confirmation command.
func (h *ConfirmVendorCommandHandler) Handle(ctx context.Context, cmd ConfirmVendorCommand) error {
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

	requests, err := uow.VendorRequestRepository().GetAllByEnquiry(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	winnerFound := false
	for _, request := range requests {
		if request.ID().IsEqual(cmd.RequestID()) {
			winnerFound = true
			if err = request.ConfirmWinner(); err != nil {
				return err
			}
		} else {
			request.MarkLost()
		}

		if err = uow.VendorRequestRepository().Update(ctx, request); err != nil {
			return err
		}
	}
	if !winnerFound {
		return errs.NewObjectNotFoundError("requestID", cmd.RequestID())
	}

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = uow.EnquiryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
