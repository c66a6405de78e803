package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorRoutesQueryHandler retrieves a vendor's route network from the
// database. Stop and pricing counts come from correlated subqueries so the
// listing stays a single round trip.
type GetVendorRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorRoutesQueryHandler creates a handler for vendor route queries.
func NewGetVendorRoutesQueryHandler(db *gorm.DB) GetVendorRoutesQueryHandler {
	return GetVendorRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all routes owned by the vendor.
// Results are sorted by origin and destination city for consistent output.
func (h GetVendorRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetVendorRoutesQuery,
) ([]GetVendorRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetVendorRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.origin_city,
			r.origin_pincode,
			r.destination_city,
			r.destination_pincode,
			r.distance_km,
			r.duration_hours,
			r.frequency,
			r.is_active,
			(SELECT COUNT(*) FROM route_stops s WHERE s.route_id = r.id),
			(SELECT COUNT(*) FROM route_segment_pricing p WHERE p.route_id = r.id)
		FROM routes r
		WHERE r.vendor_id = ?
		ORDER BY r.origin_city, r.destination_city
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var routeResp GetVendorRoutesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&routeResp.OriginCity,
			&routeResp.OriginPincode,
			&routeResp.DestinationCity,
			&routeResp.DestPincode,
			&routeResp.DistanceKm,
			&routeResp.DurationHours,
			&routeResp.Frequency,
			&routeResp.IsActive,
			&routeResp.StopCount,
			&routeResp.PricingCount,
		)
		if err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		routeResp.ID = routeID

		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
