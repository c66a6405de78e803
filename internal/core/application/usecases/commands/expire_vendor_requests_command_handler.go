package commands

import (
	"context"
)

// ExpireVendorRequestsCommandHandler expires every open vendor enquiry
// request whose 24-hour validity window has passed.
type ExpireVendorRequestsCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

// NewExpireVendorRequestsCommandHandler creates a handler for batch vendor
// request expiry.
func NewExpireVendorRequestsCommandHandler(uowFactory EnquiryUoWFactory) ExpireVendorRequestsCommandHandler {
	return ExpireVendorRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch expiry command.
func (h *ExpireVendorRequestsCommandHandler) Handle(ctx context.Context, cmd ExpireVendorRequestsCommand) error {
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

	expired, err := uow.VendorRequestRepository().GetAllExpiredOpen(ctx)
	if err != nil {
		return err
	}

	for _, request := range expired {
		if err = request.Expire(); err != nil {
			return err
		}

		if err = uow.VendorRequestRepository().Update(ctx, request); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
