package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// AcceptNegotiationCommandHandler handles the business logic for settling a
// negotiation. The quotation's total is rewritten to the accepted proposal
// and the conversion into an order runs in the same transaction.
type AcceptNegotiationCommandHandler struct {
	uowFactory ConversionUoWFactory
	dispatcher services.OrderDispatcher
}

// NewAcceptNegotiationCommandHandler creates a handler for negotiation
// settlement.
func NewAcceptNegotiationCommandHandler(
	uowFactory ConversionUoWFactory,
	dispatcher services.OrderDispatcher,
) AcceptNegotiationCommandHandler {
	return AcceptNegotiationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the settlement command and returns the new order's
// identifier.
func (h *AcceptNegotiationCommandHandler) Handle(ctx context.Context, cmd AcceptNegotiationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.QuotationRepository().Get(ctx, cmd.QuotationID())
	if err != nil {
		return kernel.UUID{}, err
	}

	party := aggregate.PartyOf(cmd.ActorID())
	if party == quotation.PartyUnknown {
		return kernel.UUID{}, errs.NewObjectNotFoundError("quotationID", cmd.QuotationID())
	}

	if err = ensureNotConverted(ctx, uow, aggregate.ID()); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()

	if err = aggregate.AcceptNegotiation(party, now); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.QuotationRepository().Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	converted, err := convertAcceptedQuotation(ctx, uow, h.dispatcher, aggregate, cmd.Details(), now)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return converted.ID(), nil
}
