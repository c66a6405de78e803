package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorRequestsQueryHandler retrieves enquiry fan-out requests from the
// database, joining the enquiry for route context.
type GetVendorRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorRequestsQueryHandler creates a handler for vendor request
// queries.
func NewGetVendorRequestsQueryHandler(db *gorm.DB) GetVendorRequestsQueryHandler {
	return GetVendorRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve the scoped vendor requests,
// newest first.
func (h GetVendorRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorRequestsQuery,
) ([]GetVendorRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var filter string
	var filterID uuid.UUID
	if query.VendorID() != nil {
		filter = "r.vendor_id"
		filterID = query.VendorID().Bytes()
	} else {
		filter = "r.enquiry_id"
		filterID = query.EnquiryID().Bytes()
	}

	requests := make([]GetVendorRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.enquiry_id,
			r.vendor_id,
			e.pickup_city,
			e.delivery_city,
			r.suggested_price_paise,
			r.response_price_paise,
			r.notes,
			r.urgency,
			r.status,
			r.created_at
		FROM vendor_enquiry_requests r
		JOIN enquiries e ON e.id = r.enquiry_id
		WHERE `+filter+` = ?
		ORDER BY r.created_at DESC
	`, filterID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var requestResp GetVendorRequestsQueryResponse
		var id, enquiryID, vendorID uuid.UUID
		var suggestedPaise int64
		var responsePaise *int64

		err = rows.Scan(
			&id,
			&enquiryID,
			&vendorID,
			&requestResp.PickupCity,
			&requestResp.DeliveryCity,
			&suggestedPaise,
			&responsePaise,
			&requestResp.Notes,
			&requestResp.Urgency,
			&requestResp.Status,
			&requestResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if requestResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if requestResp.EnquiryID, err = kernel.UUIDFromBytes(enquiryID[:]); err != nil {
			return nil, err
		}
		if requestResp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}

		if requestResp.SuggestedPrice, err = kernel.NewMoneyFromPaise(suggestedPaise); err != nil {
			return nil, err
		}
		if responsePaise != nil {
			price, priceErr := kernel.NewMoneyFromPaise(*responsePaise)
			if priceErr != nil {
				return nil, priceErr
			}
			requestResp.ResponsePrice = &price
		}

		requests = append(requests, requestResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
