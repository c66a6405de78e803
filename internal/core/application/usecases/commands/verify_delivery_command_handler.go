package commands

import (
	"context"
	"time"

	"freight/internal/pkg/errs"
)

// VerifyDeliveryCommandHandler handles the business logic for OTP-gated
// delivery confirmation. A matching OTP completes the order and frees the
// truck and driver, all in one transaction.
type VerifyDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyDeliveryCommandHandler creates a handler for delivery
// confirmation.
func NewVerifyDeliveryCommandHandler(uowFactory OrderUoWFactory) VerifyDeliveryCommandHandler {
	return VerifyDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h *VerifyDeliveryCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	err = aggregate.VerifyDeliveryOTP(cmd.OTP(), cmd.ActualWeightKg(),
		cmd.CustomerID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = releaseFleet(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
