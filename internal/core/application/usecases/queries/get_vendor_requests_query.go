package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetVendorRequestsQueryIsNotConstructed = errors.New(
	"GetVendorRequestsQuery must be created via NewGetVendorRequestsByVendorQuery or NewGetVendorRequestsByEnquiryQuery constructor",
)

// GetVendorRequestsQuery retrieves enquiry fan-out requests, scoped either
// to a vendor's inbox or to a single enquiry for the manager's comparison
// view.
type GetVendorRequestsQuery struct { //nolint:recvcheck //using for validation
	vendorID  *kernel.UUID
	enquiryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorRequestsByVendorQuery creates a query for a vendor's inbox of
// enquiry requests.
func NewGetVendorRequestsByVendorQuery(vendorID kernel.UUID) (GetVendorRequestsQuery, error) {
	query := GetVendorRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vendorID.Validate(); err != nil {
		return GetVendorRequestsQuery{}, err
	}
	query.vendorID = &vendorID

	return query, nil
}

// NewGetVendorRequestsByEnquiryQuery creates a query for all vendor requests
// fanned out from one enquiry.
func NewGetVendorRequestsByEnquiryQuery(enquiryID kernel.UUID) (GetVendorRequestsQuery, error) {
	query := GetVendorRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := enquiryID.Validate(); err != nil {
		return GetVendorRequestsQuery{}, err
	}
	query.enquiryID = &enquiryID

	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetVendorRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorRequestsQueryIsNotConstructed)
}

// VendorID returns the vendor filter, nil when scoped by enquiry.
func (q GetVendorRequestsQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// EnquiryID returns the enquiry filter, nil when scoped by vendor.
func (q GetVendorRequestsQuery) EnquiryID() *kernel.UUID {
	return q.enquiryID
}

// GetVendorRequestsQueryResponse represents a single fan-out request with
// the enquiry's route attached for context.
type GetVendorRequestsQueryResponse struct {
	ID             kernel.UUID
	EnquiryID      kernel.UUID
	VendorID       kernel.UUID
	PickupCity     string
	DeliveryCity   string
	SuggestedPrice kernel.Money
	ResponsePrice  *kernel.Money
	Notes          string
	Urgency        string
	Status         string
	CreatedAt      time.Time
}
