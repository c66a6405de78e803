package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// SendQuotationCommandHandler handles the business logic for releasing a
// pending quotation to the customer.
type SendQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewSendQuotationCommandHandler creates a handler for sending quotations.
func NewSendQuotationCommandHandler(uowFactory QuotationUoWFactory) SendQuotationCommandHandler {
	return SendQuotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send command.
func (h *SendQuotationCommandHandler) Handle(ctx context.Context, cmd SendQuotationCommand) error {
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

	aggregate, err := uow.QuotationRepository().Get(ctx, cmd.QuotationID())
	if err != nil {
		return err
	}

	if !aggregate.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewObjectNotFoundError("quotationID", cmd.QuotationID())
	}

	if err = aggregate.Send(); err != nil {
		return err
	}

	if err = uow.QuotationRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
