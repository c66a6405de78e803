package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves an order's status transition trail
// from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history
// queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's transitions in the
// order they happened.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			previous,
			next,
			actor_role,
			actor_id,
			notes,
			latitude,
			longitude,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetOrderHistoryQueryResponse
		var actorID uuid.UUID
		var latitude, longitude *float64

		err = rows.Scan(
			&entryResp.Previous,
			&entryResp.Next,
			&entryResp.ActorRole,
			&actorID,
			&entryResp.Notes,
			&latitude,
			&longitude,
			&entryResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entryResp.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		if latitude != nil && longitude != nil {
			point, pointErr := kernel.NewGeoPoint(*latitude, *longitude)
			if pointErr != nil {
				return nil, pointErr
			}
			entryResp.Location = &point
		}

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
