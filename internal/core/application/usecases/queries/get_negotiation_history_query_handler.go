package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetNegotiationHistoryQueryHandler retrieves a quotation's negotiation
// entries from the database.
type GetNegotiationHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetNegotiationHistoryQueryHandler creates a handler for negotiation
// history queries.
func NewGetNegotiationHistoryQueryHandler(db *gorm.DB) GetNegotiationHistoryQueryHandler {
	return GetNegotiationHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the negotiation entries in the
// order they were made.
func (h GetNegotiationHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetNegotiationHistoryQuery,
) ([]GetNegotiationHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetNegotiationHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			initiator,
			proposed_paise,
			message,
			created_at
		FROM quotation_negotiations
		WHERE quotation_id = ?
		ORDER BY created_at
	`, query.QuotationID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetNegotiationHistoryQueryResponse
		var proposedPaise int64

		err = rows.Scan(
			&entryResp.Initiator,
			&proposedPaise,
			&entryResp.Message,
			&entryResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entryResp.Proposed, err = kernel.NewMoneyFromPaise(proposedPaise); err != nil {
			return nil, err
		}

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
