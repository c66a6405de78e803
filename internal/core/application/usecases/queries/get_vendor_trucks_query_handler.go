package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorTrucksQueryHandler retrieves a vendor's fleet from the database.
// Joins the truck type catalogue so callers get the type name and capacity
// without a second lookup.
type GetVendorTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorTrucksQueryHandler creates a handler for vendor fleet queries.
func NewGetVendorTrucksQueryHandler(db *gorm.DB) GetVendorTrucksQueryHandler {
	return GetVendorTrucksQueryHandler{db: db}
}

// Handle executes the query to retrieve all trucks owned by the vendor.
// Results are sorted by registration number for consistent output.
func (h GetVendorTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetVendorTrucksQuery,
) ([]GetVendorTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks := make([]GetVendorTrucksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.registration_number,
			t.model_name,
			t.manufacture_year,
			t.is_available,
			tt.name,
			tt.capacity_ton
		FROM trucks t
		JOIN truck_types tt ON tt.id = t.truck_type_id
		WHERE t.vendor_id = ?
		ORDER BY t.registration_number
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var truckResp GetVendorTrucksQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&truckResp.RegistrationNumber,
			&truckResp.ModelName,
			&truckResp.ManufactureYear,
			&truckResp.IsAvailable,
			&truckResp.TruckTypeName,
			&truckResp.CapacityTon,
		)
		if err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		truckResp.ID = truckID

		trucks = append(trucks, truckResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
