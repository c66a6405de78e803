package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"
	"freight/internal/pkg/errs"
)

// GenerateInvoiceCommandHandler handles the business logic for invoice
// generation. The invoice number carries a per-day sequence, so the
// sequence query and the insert run in one transaction.
type GenerateInvoiceCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice
// generation.
func NewGenerateInvoiceCommandHandler(uowFactory PaymentUoWFactory) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice generation command and returns the new
// invoice's identifier.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) (kernel.UUID, error) {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	_, err = uow.InvoiceRepository().GetByOrder(ctx, ord.ID())
	if err == nil {
		return kernel.UUID{}, ErrInvoiceAlreadyExists
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()

	sequence, err := uow.InvoiceRepository().NextDailySequence(ctx, now)
	if err != nil {
		return kernel.UUID{}, err
	}

	charges := cmd.Charges()
	aggregate, err := payment.NewInvoice(ord.ID(), sequence, charges.BaseCharge,
		charges.FuelCharge, charges.TollCharge, charges.LoadingCharge,
		charges.UnloadingCharge, charges.AdditionalCharge, charges.Discount,
		charges.CGSTRate, charges.SGSTRate, charges.IGSTRate, now)
	if err != nil {
		return kernel.UUID{}, err
	}
	aggregate.MarkGenerated()

	if err = uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
