package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPriceRangesQueryHandler retrieves an enquiry's generated price ranges
// from the database.
type GetPriceRangesQueryHandler struct {
	db *gorm.DB
}

// NewGetPriceRangesQueryHandler creates a handler for price range queries.
func NewGetPriceRangesQueryHandler(db *gorm.DB) GetPriceRangesQueryHandler {
	return GetPriceRangesQueryHandler{db: db}
}

// Handle executes the query to retrieve the enquiry's price ranges,
// cheapest minimum first.
func (h GetPriceRangesQueryHandler) Handle(
	ctx context.Context,
	query GetPriceRangesQuery,
) ([]GetPriceRangesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ranges := make([]GetPriceRangesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			min_price_paise,
			max_price_paise,
			avg_price_paise,
			vehicle_count,
			vendor_count,
			chance,
			duration_hours,
			miscellaneous
		FROM enquiry_price_ranges
		WHERE enquiry_id = ?
		ORDER BY min_price_paise
	`, query.EnquiryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rangeResp GetPriceRangesQueryResponse
		var id uuid.UUID
		var minPaise, maxPaise, avgPaise int64

		err = rows.Scan(
			&id,
			&minPaise,
			&maxPaise,
			&avgPaise,
			&rangeResp.VehicleCount,
			&rangeResp.VendorCount,
			&rangeResp.Chance,
			&rangeResp.DurationHours,
			&rangeResp.Miscellaneous,
		)
		if err != nil {
			return nil, err
		}

		rangeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rangeResp.ID = rangeID

		if rangeResp.MinPrice, err = kernel.NewMoneyFromPaise(minPaise); err != nil {
			return nil, err
		}
		if rangeResp.MaxPrice, err = kernel.NewMoneyFromPaise(maxPaise); err != nil {
			return nil, err
		}
		if rangeResp.AvgPrice, err = kernel.NewMoneyFromPaise(avgPaise); err != nil {
			return nil, err
		}

		ranges = append(ranges, rangeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ranges, nil
}
