package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles the business logic for route publication.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route publication.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route publication command and returns the new route's
// identifier.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := route.NewRoute(cmd.VendorID(), cmd.Origin(), cmd.Destination(),
		cmd.DistanceKm(), cmd.DurationHours(), cmd.Frequency())
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, stop := range cmd.Stops() {
		if err = aggregate.AddStop(stop); err != nil {
			return kernel.UUID{}, err
		}
	}
	for _, pricing := range cmd.Pricing() {
		if err = aggregate.AddSegmentPricing(pricing); err != nil {
			return kernel.UUID{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	duplicate, err := uow.RouteRepository().ExistsCorridor(ctx, aggregate)
	if err != nil {
		return kernel.UUID{}, err
	}
	if duplicate {
		return kernel.UUID{}, ErrDuplicateRoute
	}

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
