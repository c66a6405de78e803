package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are loaded with their complete status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByQuotation retrieves the order converted from the quotation.
	// Used to keep order conversion idempotent per quotation.
	GetByQuotation(ctx context.Context, quotationID kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByVendor retrieves every order fulfilled by the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error)

	// GetAllByDriver retrieves every order assigned to the driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
