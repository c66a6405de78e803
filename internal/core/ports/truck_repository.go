// Package ports defines repository interfaces for the freight marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckTypeRepository defines the persistence contract for truck type entities.
type TruckTypeRepository interface {
	// Add persists a new truck type.
	Add(ctx context.Context, truckType *truck.TruckType) error

	// Get retrieves a truck type by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.TruckType, error)

	// GetAll retrieves every registered truck type.
	GetAll(ctx context.Context) ([]*truck.TruckType, error)
}

// TruckRepository defines the persistence contract for truck aggregates.
type TruckRepository interface {
	// Add persists a new truck aggregate to storage.
	// The truck must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update persists changes to an existing truck aggregate.
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get retrieves a truck aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetAllByVendor retrieves every truck registered by the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Truck, error)

	// GetAllAvailable retrieves the vendor's available trucks of the given
	// type, used when a quotation is converted into an order.
	GetAllAvailable(ctx context.Context, vendorID kernel.UUID, truckTypeID kernel.UUID) ([]*truck.Truck, error)
}

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *truck.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *truck.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*truck.Driver, error)

	// GetAllByVendor retrieves every driver employed by the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Driver, error)
}
