package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetNegotiationHistoryQueryIsNotConstructed = errors.New(
	"GetNegotiationHistoryQuery must be created via NewGetNegotiationHistoryQuery constructor",
)

// GetNegotiationHistoryQuery retrieves the back-and-forth negotiation
// entries of a quotation in chronological order.
type GetNegotiationHistoryQuery struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNegotiationHistoryQuery creates a query for a quotation's
// negotiation history.
func NewGetNegotiationHistoryQuery(quotationID kernel.UUID) (GetNegotiationHistoryQuery, error) {
	query := GetNegotiationHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setQuotationID(quotationID); err != nil {
		return GetNegotiationHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNegotiationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetNegotiationHistoryQueryIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (q GetNegotiationHistoryQuery) QuotationID() kernel.UUID {
	return q.quotationID
}

func (q *GetNegotiationHistoryQuery) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	q.quotationID = quotationID
	return nil
}

// GetNegotiationHistoryQueryResponse represents a single negotiation entry.
type GetNegotiationHistoryQueryResponse struct {
	Initiator string
	Proposed  kernel.Money
	Message   string
	CreatedAt time.Time
}
