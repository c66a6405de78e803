package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// AcceptQuotationCommandHandler handles the business logic for direct
// quotation acceptance. Only the quotation's customer may accept. The
// acceptance, the rejection of competing quotations, the request
// fulfillment, the truck dispatch and the order creation all commit or roll
// back together.
type AcceptQuotationCommandHandler struct {
	uowFactory ConversionUoWFactory
	dispatcher services.OrderDispatcher
}

// NewAcceptQuotationCommandHandler creates a handler for quotation
// acceptance.
func NewAcceptQuotationCommandHandler(
	uowFactory ConversionUoWFactory,
	dispatcher services.OrderDispatcher,
) AcceptQuotationCommandHandler {
	return AcceptQuotationCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the acceptance command and returns the new order's
// identifier.
func (h *AcceptQuotationCommandHandler) Handle(ctx context.Context, cmd AcceptQuotationCommand) (kernel.UUID, error) {
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

	if aggregate.PartyOf(cmd.CustomerID()) != quotation.PartyCustomer {
		return kernel.UUID{}, errs.NewObjectNotFoundError("quotationID", cmd.QuotationID())
	}

	if err = ensureNotConverted(ctx, uow, aggregate.ID()); err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()

	if err = aggregate.Accept(now); err != nil {
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
