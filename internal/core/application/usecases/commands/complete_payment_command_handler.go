package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/payment"
)

// CompletePaymentCommandHandler handles the business logic for payment
// settlement callbacks. A completed full payment confirms the order in the
// same transaction.
type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment
// settlement.
func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	now := time.Now().UTC()

	if cmd.Success() {
		err = aggregate.Complete(cmd.GatewayTransactionID(), now)
	} else {
		err = aggregate.Fail(cmd.FailureReason(), now)
	}
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Success() && aggregate.PaymentType() == payment.TypeFull {
		if err = h.confirmOrder(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// confirmOrder moves the paid order to Confirmed. The settlement callback
// acts with admin authority; the order keeps the payment reference in its
// history notes.
func (h *CompletePaymentCommandHandler) confirmOrder(
	ctx context.Context,
	uow PaymentUoW,
	paid *payment.Payment,
	now time.Time,
) error {
	ord, err := uow.OrderRepository().Get(ctx, paid.OrderID())
	if err != nil {
		return err
	}

	err = ord.ChangeStatus(order.StatusConfirmed, order.RoleAdmin, ord.CustomerID(),
		"full payment received: "+paid.Reference(), nil, now)
	if err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, ord)
}
