package commands

import (
	"context"
	"time"

	"freight/internal/pkg/errs"
)

// AssignDriverCommandHandler handles the business logic for staffing an
// order. The driver must belong to the order's vendor and be available; the
// assignment marks them unavailable in the same transaction.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if !ownsOrder(aggregate, cmd.Role(), cmd.ActorID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	driver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if !driver.VendorID().IsEqual(aggregate.VendorID()) {
		return errs.NewObjectNotFoundError("driverID", cmd.DriverID())
	}

	if err = driver.Assign(); err != nil {
		return err
	}

	err = aggregate.AssignDriver(driver.ID(), cmd.Role(), cmd.ActorID(),
		cmd.Notes(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, driver); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
