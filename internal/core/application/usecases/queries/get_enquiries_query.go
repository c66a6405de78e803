package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetEnquiriesQueryIsNotConstructed = errors.New(
	"GetEnquiriesQuery must be created via NewGetEnquiriesByCustomerQuery or NewGetEnquiriesByManagerQuery constructor",
)

// GetEnquiriesQuery retrieves enquiries scoped to one side of the
// marketplace: either a customer's own enquiries or the enquiries assigned
// to a manager's worklist.
type GetEnquiriesQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	managerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEnquiriesByCustomerQuery creates a query for a customer's enquiries.
func NewGetEnquiriesByCustomerQuery(customerID kernel.UUID) (GetEnquiriesQuery, error) {
	query := GetEnquiriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetEnquiriesQuery{}, err
	}
	query.customerID = &customerID

	return query, nil
}

// NewGetEnquiriesByManagerQuery creates a query for a manager's assigned
// enquiries.
func NewGetEnquiriesByManagerQuery(managerID kernel.UUID) (GetEnquiriesQuery, error) {
	query := GetEnquiriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := managerID.Validate(); err != nil {
		return GetEnquiriesQuery{}, err
	}
	query.managerID = &managerID

	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetEnquiriesQuery) Validate() error {
	return q.guard.Validate(ErrGetEnquiriesQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil when scoped by manager.
func (q GetEnquiriesQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ManagerID returns the manager filter, nil when scoped by customer.
func (q GetEnquiriesQuery) ManagerID() *kernel.UUID {
	return q.managerID
}

// GetEnquiriesQueryResponse represents a single enquiry summary.
type GetEnquiriesQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	PickupCity         string
	DeliveryCity       string
	PickupDate         time.Time
	VehicleCount       int
	WeightTon          float64
	CargoDescription   string
	Status             string
	MiscellaneousRoute bool
	CreatedAt          time.Time
}
