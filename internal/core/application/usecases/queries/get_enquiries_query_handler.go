package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEnquiriesQueryHandler retrieves enquiry listings from the database,
// scoped by the query to a customer or an assigned manager.
type GetEnquiriesQueryHandler struct {
	db *gorm.DB
}

// NewGetEnquiriesQueryHandler creates a handler for enquiry listing queries.
func NewGetEnquiriesQueryHandler(db *gorm.DB) GetEnquiriesQueryHandler {
	return GetEnquiriesQueryHandler{db: db}
}

// Handle executes the query to retrieve the scoped enquiries.
// Results are sorted by creation time, newest first.
func (h GetEnquiriesQueryHandler) Handle(
	ctx context.Context,
	query GetEnquiriesQuery,
) ([]GetEnquiriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var filter string
	var filterID uuid.UUID
	if query.CustomerID() != nil {
		filter = "customer_id"
		filterID = query.CustomerID().Bytes()
	} else {
		filter = "manager_id"
		filterID = query.ManagerID().Bytes()
	}

	enquiries := make([]GetEnquiriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			pickup_city,
			delivery_city,
			pickup_date,
			vehicle_count,
			weight_ton,
			cargo_description,
			status,
			miscellaneous_route,
			created_at
		FROM enquiries
		WHERE `+filter+` = ?
		ORDER BY created_at DESC
	`, filterID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var enquiryResp GetEnquiriesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&enquiryResp.PickupCity,
			&enquiryResp.DeliveryCity,
			&enquiryResp.PickupDate,
			&enquiryResp.VehicleCount,
			&enquiryResp.WeightTon,
			&enquiryResp.CargoDescription,
			&enquiryResp.Status,
			&enquiryResp.MiscellaneousRoute,
			&enquiryResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		enquiryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		enquiryResp.ID = enquiryID

		enquiryCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		enquiryResp.CustomerID = enquiryCustomerID

		enquiries = append(enquiries, enquiryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return enquiries, nil
}
