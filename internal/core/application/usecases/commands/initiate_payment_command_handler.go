package commands

import (
	"context"
	"time"
)

// InitiatePaymentCommandHandler handles the business logic for gateway
// initiation of a pending payment.
type InitiatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewInitiatePaymentCommandHandler creates a handler for payment
// initiation.
func NewInitiatePaymentCommandHandler(uowFactory PaymentUoWFactory) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the initiation command.
func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) error {
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

	aggregate, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.Initiate(cmd.GatewayName(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
