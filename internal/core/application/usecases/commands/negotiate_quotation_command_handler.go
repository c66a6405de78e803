package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"
)

// NegotiateQuotationCommandHandler handles the business logic for
// counter-offers. The acting user must be the quotation's customer or
// vendor; everything else is the aggregate's state machine.
type NegotiateQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewNegotiateQuotationCommandHandler creates a handler for counter-offers.
func NewNegotiateQuotationCommandHandler(uowFactory QuotationUoWFactory) NegotiateQuotationCommandHandler {
	return NegotiateQuotationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the counter-offer command.
func (h *NegotiateQuotationCommandHandler) Handle(ctx context.Context, cmd NegotiateQuotationCommand) error {
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

	party := aggregate.PartyOf(cmd.ActorID())
	if party == quotation.PartyUnknown {
		return errs.NewObjectNotFoundError("quotationID", cmd.QuotationID())
	}

	if err = aggregate.Negotiate(party, cmd.Proposed(), cmd.Message(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.QuotationRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
