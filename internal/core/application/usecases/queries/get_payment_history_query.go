package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery retrieves a payment's status transition trail in
// chronological order.
type GetPaymentHistoryQuery struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for a payment's status history.
func NewGetPaymentHistoryQuery(paymentID kernel.UUID) (GetPaymentHistoryQuery, error) {
	query := GetPaymentHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPaymentID(paymentID); err != nil {
		return GetPaymentHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// PaymentID returns the payment identifier.
func (q GetPaymentHistoryQuery) PaymentID() kernel.UUID {
	return q.paymentID
}

func (q *GetPaymentHistoryQuery) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	q.paymentID = paymentID
	return nil
}

// GetPaymentHistoryQueryResponse represents a single payment status
// transition.
type GetPaymentHistoryQueryResponse struct {
	Previous  string
	Next      string
	Notes     string
	CreatedAt time.Time
}
