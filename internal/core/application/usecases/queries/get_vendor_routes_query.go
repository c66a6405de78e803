package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetVendorRoutesQueryIsNotConstructed = errors.New(
	"GetVendorRoutesQuery must be created via NewGetVendorRoutesQuery constructor",
)

// GetVendorRoutesQuery retrieves all routes published by a vendor with
// their stop and pricing counts.
type GetVendorRoutesQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorRoutesQuery creates a query for a vendor's route network.
func NewGetVendorRoutesQuery(vendorID kernel.UUID) (GetVendorRoutesQuery, error) {
	query := GetVendorRoutesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorRoutesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorRoutesQueryIsNotConstructed)
}

// VendorID returns the vendor identifier.
func (q GetVendorRoutesQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorRoutesQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

// GetVendorRoutesQueryResponse represents a single route summary.
type GetVendorRoutesQueryResponse struct {
	ID              kernel.UUID
	OriginCity      string
	OriginPincode   string
	DestinationCity string
	DestPincode     string
	DistanceKm      float64
	DurationHours   float64
	Frequency       string
	IsActive        bool
	StopCount       int
	PricingCount    int
}
