package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// UpdateTruckAvailabilityCommandHandler handles the business logic for truck
// availability changes. Only the owning vendor may change a truck.
type UpdateTruckAvailabilityCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewUpdateTruckAvailabilityCommandHandler creates a handler for truck
// availability changes.
func NewUpdateTruckAvailabilityCommandHandler(uowFactory FleetUoWFactory) UpdateTruckAvailabilityCommandHandler {
	return UpdateTruckAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
func (h *UpdateTruckAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateTruckAvailabilityCommand) error {
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

	aggregate, err := uow.TruckRepository().Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if !aggregate.VendorID().IsEqual(cmd.VendorID()) {
		return errs.NewObjectNotFoundError("truckID", cmd.TruckID())
	}

	if cmd.Available() {
		err = aggregate.Release()
	} else {
		err = aggregate.Dispatch()
	}
	if err != nil {
		return err
	}

	if err = uow.TruckRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
