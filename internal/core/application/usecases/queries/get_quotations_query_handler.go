package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuotationsQueryHandler retrieves quotation listings from the database.
// Item and negotiation counts come from correlated subqueries so the
// listing stays a single round trip.
type GetQuotationsQueryHandler struct {
	db *gorm.DB
}

// NewGetQuotationsQueryHandler creates a handler for quotation listing
// queries.
func NewGetQuotationsQueryHandler(db *gorm.DB) GetQuotationsQueryHandler {
	return GetQuotationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the scoped quotations, newest
// first.
func (h GetQuotationsQueryHandler) Handle(
	ctx context.Context,
	query GetQuotationsQuery,
) ([]GetQuotationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var filter string
	var filterID uuid.UUID
	switch {
	case query.RequestID() != nil:
		filter = "q.request_id"
		filterID = query.RequestID().Bytes()
	case query.VendorID() != nil:
		filter = "q.vendor_id"
		filterID = query.VendorID().Bytes()
	default:
		filter = "q.customer_id"
		filterID = query.CustomerID().Bytes()
	}

	quotations := make([]GetQuotationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			q.id,
			q.request_id,
			q.vendor_id,
			q.total_amount_paise,
			q.original_amount_paise,
			q.validity_hours,
			q.status,
			(SELECT COUNT(*) FROM quotation_items i WHERE i.quotation_id = q.id),
			(SELECT COUNT(*) FROM quotation_negotiations n WHERE n.quotation_id = q.id),
			q.created_at
		FROM quotations q
		WHERE `+filter+` = ?
		ORDER BY q.created_at DESC
	`, filterID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var quotationResp GetQuotationsQueryResponse
		var id, requestID, vendorID uuid.UUID
		var totalPaise, originalPaise int64

		err = rows.Scan(
			&id,
			&requestID,
			&vendorID,
			&totalPaise,
			&originalPaise,
			&quotationResp.ValidityHours,
			&quotationResp.Status,
			&quotationResp.ItemCount,
			&quotationResp.NegotiationCount,
			&quotationResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if quotationResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if quotationResp.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
			return nil, err
		}
		if quotationResp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		if quotationResp.TotalAmount, err = kernel.NewMoneyFromPaise(totalPaise); err != nil {
			return nil, err
		}
		if quotationResp.OriginalAmount, err = kernel.NewMoneyFromPaise(originalPaise); err != nil {
			return nil, err
		}

		quotations = append(quotations, quotationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotations, nil
}
