package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentHistoryQueryHandler retrieves a payment's status transition
// trail from the database.
type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history
// queries.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the payment's transitions in the
// order they happened.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]GetPaymentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetPaymentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous,
			next,
			notes,
			created_at
		FROM payment_status_history
		WHERE payment_id = ?
		ORDER BY created_at
	`, query.PaymentID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetPaymentHistoryQueryResponse

		err = rows.Scan(
			&entryResp.Previous,
			&entryResp.Next,
			&entryResp.Notes,
			&entryResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
