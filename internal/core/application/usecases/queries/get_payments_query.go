package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsByOrderQuery or NewGetPaymentsByCustomerQuery constructor",
)

// GetPaymentsQuery retrieves payments scoped to an order or to all orders
// of a customer.
type GetPaymentsQuery struct { //nolint:recvcheck //using for validation
	orderID    *kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentsByOrderQuery creates a query for an order's payments.
func NewGetPaymentsByOrderQuery(orderID kernel.UUID) (GetPaymentsQuery, error) {
	query := GetPaymentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	query.orderID = &orderID

	return query, nil
}

// NewGetPaymentsByCustomerQuery creates a query for all payments across a
// customer's orders.
func NewGetPaymentsByCustomerQuery(customerID kernel.UUID) (GetPaymentsQuery, error) {
	query := GetPaymentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	query.customerID = &customerID

	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

// OrderID returns the order filter, nil when scoped by customer.
func (q GetPaymentsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// CustomerID returns the customer filter, nil when scoped by order.
func (q GetPaymentsQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// GetPaymentsQueryResponse represents a single payment summary.
type GetPaymentsQueryResponse struct {
	ID          kernel.UUID
	Reference   string
	OrderID     kernel.UUID
	OrderNumber string
	Amount      kernel.Money
	PaymentType string
	Method      string
	GatewayName string
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
}
