package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// CreateTruckTypeCommandHandler handles the business logic for truck type
// registration.
type CreateTruckTypeCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateTruckTypeCommandHandler creates a handler for truck type registration.
func NewCreateTruckTypeCommandHandler(uowFactory FleetUoWFactory) CreateTruckTypeCommandHandler {
	return CreateTruckTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck type registration command and returns the new
// truck type's identifier.
func (h *CreateTruckTypeCommandHandler) Handle(ctx context.Context, cmd CreateTruckTypeCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	truckType, err := truck.NewTruckType(cmd.Name(), cmd.CapacityTon(), cmd.Description())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TruckTypeRepository().Add(ctx, truckType); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return truckType.ID(), nil
}
