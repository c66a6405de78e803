package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetPriceRangesQueryIsNotConstructed = errors.New(
	"GetPriceRangesQuery must be created via NewGetPriceRangesQuery constructor",
)

// GetPriceRangesQuery retrieves the price ranges generated for an enquiry,
// ordered cheapest first so the customer sees the best offer on top.
type GetPriceRangesQuery struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPriceRangesQuery creates a query for an enquiry's price ranges.
func NewGetPriceRangesQuery(enquiryID kernel.UUID) (GetPriceRangesQuery, error) {
	query := GetPriceRangesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEnquiryID(enquiryID); err != nil {
		return GetPriceRangesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPriceRangesQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceRangesQueryIsNotConstructed)
}

// EnquiryID returns the enquiry identifier.
func (q GetPriceRangesQuery) EnquiryID() kernel.UUID {
	return q.enquiryID
}

func (q *GetPriceRangesQuery) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return err
	}

	q.enquiryID = enquiryID
	return nil
}

// GetPriceRangesQueryResponse represents a single generated price range.
type GetPriceRangesQueryResponse struct {
	ID            kernel.UUID
	MinPrice      kernel.Money
	MaxPrice      kernel.Money
	AvgPrice      kernel.Money
	VehicleCount  int
	VendorCount   int
	Chance        string
	DurationHours float64
	Miscellaneous bool
}
