package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// A route is loaded with its complete state, stops and segment pricing
// included.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	// The route must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// ExistsCorridor reports whether the vendor already publishes a route
	// between the same origin and destination cities.
	ExistsCorridor(ctx context.Context, aggregate *route.Route) (bool, error)

	// GetAllByVendor retrieves every route published by the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*route.Route, error)

	// GetAllActive retrieves every active route with its stops and pricing.
	// Used by enquiry matching to build price ranges.
	GetAllActive(ctx context.Context) ([]*route.Route, error)
}
