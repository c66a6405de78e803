package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler handles the business logic for truck registration.
// The referenced truck type must exist.
type CreateTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateTruckCommandHandler creates a handler for truck registration.
func NewCreateTruckCommandHandler(uowFactory FleetUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck registration command and returns the new truck's
// identifier.
func (h *CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) (kernel.UUID, error) {
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

	if _, err := uow.TruckTypeRepository().Get(ctx, cmd.TruckTypeID()); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := truck.NewTruck(cmd.VendorID(), cmd.TruckTypeID(),
		cmd.RegistrationNumber(), cmd.ModelName(), cmd.ManufactureYear())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.TruckRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
