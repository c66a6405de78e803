package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"
	"freight/internal/pkg/errs"
)

// CreatePaymentCommandHandler handles the business logic for opening a
// payment. Only the order's customer may pay for it.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for opening payments.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command and returns the new
// payment's identifier.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (kernel.UUID, error) {
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

	if !ord.CustomerID().IsEqual(cmd.CustomerID()) {
		return kernel.UUID{}, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	aggregate, err := payment.NewPayment(ord.ID(), cmd.Amount(), cmd.PaymentType(),
		cmd.Method(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
