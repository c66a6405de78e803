package commands

import (
	"context"

	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"
)

// RejectQuotationCommandHandler handles the business logic for quotation
// rejection by the customer.
type RejectQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewRejectQuotationCommandHandler creates a handler for quotation
// rejection.
func NewRejectQuotationCommandHandler(uowFactory QuotationUoWFactory) RejectQuotationCommandHandler {
	return RejectQuotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectQuotationCommandHandler) Handle(ctx context.Context, cmd RejectQuotationCommand) error {
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

	if aggregate.PartyOf(cmd.CustomerID()) != quotation.PartyCustomer {
		return errs.NewObjectNotFoundError("quotationID", cmd.QuotationID())
	}

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = uow.QuotationRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
