package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
)

// QuotationRequestRepository defines the persistence contract for customer
// quotation requests.
type QuotationRequestRepository interface {
	// Add persists a new quotation request.
	Add(ctx context.Context, aggregate *quotation.Request) error

	// Update persists changes to an existing quotation request.
	Update(ctx context.Context, aggregate *quotation.Request) error

	// Get retrieves a quotation request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quotation.Request, error)

	// GetAllByCustomer retrieves every request submitted by the customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*quotation.Request, error)

	// CountActiveByCustomer counts the customer's requests in active status.
	// Used to enforce the per-customer cap on open requests.
	CountActiveByCustomer(ctx context.Context, customerID kernel.UUID) (int, error)

	// ExistsDuplicate reports whether the customer already has a request for
	// the same origin, destination and dates.
	ExistsDuplicate(ctx context.Context, aggregate *quotation.Request) (bool, error)
}

// QuotationRepository defines the persistence contract for quotation
// aggregates with their items and negotiation history.
type QuotationRepository interface {
	// Add persists a new quotation aggregate to storage.
	Add(ctx context.Context, aggregate *quotation.Quotation) error

	// Update persists changes to an existing quotation aggregate.
	Update(ctx context.Context, aggregate *quotation.Quotation) error

	// Get retrieves a quotation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error)

	// GetAllByRequest retrieves every quotation submitted for the request.
	GetAllByRequest(ctx context.Context, requestID kernel.UUID) ([]*quotation.Quotation, error)

	// GetAllOpenByRequest retrieves the request's quotations still open for
	// negotiation. Used to reject siblings when one quotation is accepted.
	GetAllOpenByRequest(ctx context.Context, requestID kernel.UUID) ([]*quotation.Quotation, error)

	// GetAllByVendor retrieves every quotation submitted by the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*quotation.Quotation, error)

	// GetAllByCustomer retrieves every quotation addressed to the customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*quotation.Quotation, error)

	// GetAllExpiredOpen retrieves quotations still open for negotiation whose
	// validity window has lapsed. Used by the expiry job.
	GetAllExpiredOpen(ctx context.Context) ([]*quotation.Quotation, error)
}
