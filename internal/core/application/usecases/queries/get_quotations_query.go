package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetQuotationsQueryIsNotConstructed = errors.New(
	"GetQuotationsQuery must be created via one of its constructors",
)

// GetQuotationsQuery retrieves quotations scoped to a request, a vendor or
// a customer.
//
// Example:
//
//	query, err := NewGetQuotationsByCustomerQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	quotations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get quotations: %w", err)
//	}
type GetQuotationsQuery struct { //nolint:recvcheck //using for validation
	requestID  *kernel.UUID
	vendorID   *kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuotationsByRequestQuery creates a query for all quotations raised
// against one quotation request.
func NewGetQuotationsByRequestQuery(requestID kernel.UUID) (GetQuotationsQuery, error) {
	query := GetQuotationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := requestID.Validate(); err != nil {
		return GetQuotationsQuery{}, err
	}
	query.requestID = &requestID

	return query, nil
}

// NewGetQuotationsByVendorQuery creates a query for a vendor's quotations.
func NewGetQuotationsByVendorQuery(vendorID kernel.UUID) (GetQuotationsQuery, error) {
	query := GetQuotationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vendorID.Validate(); err != nil {
		return GetQuotationsQuery{}, err
	}
	query.vendorID = &vendorID

	return query, nil
}

// NewGetQuotationsByCustomerQuery creates a query for a customer's received
// quotations.
func NewGetQuotationsByCustomerQuery(customerID kernel.UUID) (GetQuotationsQuery, error) {
	query := GetQuotationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetQuotationsQuery{}, err
	}
	query.customerID = &customerID

	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetQuotationsQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotationsQueryIsNotConstructed)
}

// RequestID returns the request filter, nil when scoped otherwise.
func (q GetQuotationsQuery) RequestID() *kernel.UUID {
	return q.requestID
}

// VendorID returns the vendor filter, nil when scoped otherwise.
func (q GetQuotationsQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// CustomerID returns the customer filter, nil when scoped otherwise.
func (q GetQuotationsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// GetQuotationsQueryResponse represents a single quotation summary. The
// original amount is kept alongside the current total so negotiation
// movement is visible at a glance.
type GetQuotationsQueryResponse struct {
	ID               kernel.UUID
	RequestID        kernel.UUID
	VendorID         kernel.UUID
	TotalAmount      kernel.Money
	OriginalAmount   kernel.Money
	ValidityHours    int
	Status           string
	ItemCount        int
	NegotiationCount int
	CreatedAt        time.Time
}
