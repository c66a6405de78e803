package ports

import (
	"context"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"
)

// EnquiryRepository defines the persistence contract for enquiry aggregates.
type EnquiryRepository interface {
	// Add persists a new enquiry aggregate to storage.
	Add(ctx context.Context, aggregate *enquiry.Enquiry) error

	// Update persists changes to an existing enquiry aggregate.
	Update(ctx context.Context, aggregate *enquiry.Enquiry) error

	// Get retrieves an enquiry aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*enquiry.Enquiry, error)

	// GetAllByCustomer retrieves every enquiry submitted by the customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*enquiry.Enquiry, error)

	// GetAllByManager retrieves every enquiry assigned to the manager.
	GetAllByManager(ctx context.Context, managerID kernel.UUID) ([]*enquiry.Enquiry, error)
}

// PriceRangeRepository defines the persistence contract for the price ranges
// generated for an enquiry.
type PriceRangeRepository interface {
	// AddAll persists the generated price ranges for an enquiry.
	AddAll(ctx context.Context, ranges []*enquiry.PriceRange) error

	// Get retrieves a price range by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*enquiry.PriceRange, error)

	// GetAllByEnquiry retrieves every price range generated for the enquiry.
	GetAllByEnquiry(ctx context.Context, enquiryID kernel.UUID) ([]*enquiry.PriceRange, error)
}

// VendorRequestRepository defines the persistence contract for the requests a
// manager fans out to vendors for a selected price range.
type VendorRequestRepository interface {
	// Add persists a new vendor request.
	Add(ctx context.Context, aggregate *enquiry.VendorRequest) error

	// Update persists changes to an existing vendor request.
	Update(ctx context.Context, aggregate *enquiry.VendorRequest) error

	// Get retrieves a vendor request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*enquiry.VendorRequest, error)

	// GetAllByEnquiry retrieves every vendor request sent for the enquiry.
	GetAllByEnquiry(ctx context.Context, enquiryID kernel.UUID) ([]*enquiry.VendorRequest, error)

	// GetAllByVendor retrieves every vendor request addressed to the vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*enquiry.VendorRequest, error)

	// GetAllExpiredOpen retrieves requests still awaiting a response whose
	// validity window has lapsed. Used by the expiry job.
	GetAllExpiredOpen(ctx context.Context) ([]*enquiry.VendorRequest, error)
}

// ManagerRepository defines the persistence contract for managers and the
// workload-based assignment used when a price range is selected.
type ManagerRepository interface {
	// Add persists a new manager.
	Add(ctx context.Context, aggregate *enquiry.Manager) error

	// Get retrieves a manager by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*enquiry.Manager, error)

	// GetLeastLoaded retrieves the active manager with the fewest enquiries
	// currently in the quote-selected, sent-to-vendors or vendor-responses
	// stages.
	GetLeastLoaded(ctx context.Context) (*enquiry.Manager, error)
}
