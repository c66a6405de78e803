package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetVendorPaymentStatsQueryIsNotConstructed = errors.New(
	"GetVendorPaymentStatsQuery must be created via NewGetVendorPaymentStatsQuery constructor",
)

// GetVendorPaymentStatsQuery retrieves a vendor's payment totals and
// monthly revenue breakdown across all their orders.
type GetVendorPaymentStatsQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorPaymentStatsQuery creates a query for a vendor's payment
// statistics.
func NewGetVendorPaymentStatsQuery(vendorID kernel.UUID) (GetVendorPaymentStatsQuery, error) {
	query := GetVendorPaymentStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setVendorID(vendorID); err != nil {
		return GetVendorPaymentStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorPaymentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorPaymentStatsQueryIsNotConstructed)
}

// VendorID returns the vendor identifier.
func (q GetVendorPaymentStatsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorPaymentStatsQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}

// MonthlyRevenue represents completed payment volume for one calendar
// month, labelled as "2006-01".
type MonthlyRevenue struct {
	Month  string
	Amount kernel.Money
	Count  int
}

// GetVendorPaymentStatsQueryResponse represents a vendor's payment
// statistics. Completed covers settled payments; Pending covers payments
// not yet settled or failed.
type GetVendorPaymentStatsQueryResponse struct {
	CompletedAmount kernel.Money
	CompletedCount  int
	PendingAmount   kernel.Money
	PendingCount    int
	FailedCount     int
	Monthly         []MonthlyRevenue
}
