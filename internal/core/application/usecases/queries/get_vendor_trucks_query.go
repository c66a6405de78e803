package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetVendorTrucksQueryIsNotConstructed = errors.New(
	"GetVendorTrucksQuery must be created via NewGetVendorTrucksQuery constructor",
)

// GetVendorTrucksQuery retrieves all trucks registered by a vendor together
// with their truck type details.
//
// Example:
//
//	query, err := NewGetVendorTrucksQuery(vendorID)
//	if err != nil {
//	    return err
//	}
//
//	trucks, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get vendor trucks: %w", err)
//	}
//
//	for _, t := range trucks {
//	    fmt.Printf("%s (%s, %.1ft)\n", t.RegistrationNumber, t.TruckTypeName, t.CapacityTon)
//	}
type GetVendorTrucksQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorTrucksQuery creates a query for a vendor's truck fleet.
func NewGetVendorTrucksQuery(vendorID kernel.UUID) (GetVendorTrucksQuery, error) {
	query := GetVendorTrucksQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorTrucksQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorTrucksQueryIsNotConstructed)
}

// VendorID returns the vendor identifier.
func (q GetVendorTrucksQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorTrucksQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

// GetVendorTrucksQueryResponse represents a single truck in the vendor's
// fleet with its type name and capacity resolved.
type GetVendorTrucksQueryResponse struct {
	ID                 kernel.UUID
	RegistrationNumber string
	ModelName          string
	ManufactureYear    int
	IsAvailable        bool
	TruckTypeName      string
	CapacityTon        float64
}
