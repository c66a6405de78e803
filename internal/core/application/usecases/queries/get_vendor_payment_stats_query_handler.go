package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GetVendorPaymentStatsQueryHandler aggregates payment figures for a
// vendor's orders. Pending covers payments still moving through the
// gateway, failed covers the terminal failure states.
type GetVendorPaymentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorPaymentStatsQueryHandler creates a handler for vendor payment
// statistics queries.
func NewGetVendorPaymentStatsQueryHandler(db *gorm.DB) GetVendorPaymentStatsQueryHandler {
	return GetVendorPaymentStatsQueryHandler{db: db}
}

// Handle executes the aggregation, returning overall totals plus a monthly
// breakdown of completed payments, most recent month first.
func (h GetVendorPaymentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorPaymentStatsQuery,
) (GetVendorPaymentStatsQueryResponse, error) {
	var empty GetVendorPaymentStatsQueryResponse

	if err := query.Validate(); err != nil {
		return empty, err
	}

	stats, err := h.loadTotals(ctx, query)
	if err != nil {
		return empty, err
	}

	stats.Monthly, err = h.loadMonthly(ctx, query)
	if err != nil {
		return empty, err
	}

	return stats, nil
}

func (h GetVendorPaymentStatsQueryHandler) loadTotals(
	ctx context.Context,
	query GetVendorPaymentStatsQuery,
) (GetVendorPaymentStatsQueryResponse, error) {
	var stats GetVendorPaymentStatsQueryResponse

	var completedPaise, pendingPaise int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(p.amount_paise) FILTER (WHERE p.status = ?), 0),
			COUNT(*) FILTER (WHERE p.status = ?),
			COALESCE(SUM(p.amount_paise) FILTER (WHERE p.status IN (?, ?)), 0),
			COUNT(*) FILTER (WHERE p.status IN (?, ?)),
			COUNT(*) FILTER (WHERE p.status = ?)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE o.vendor_id = ?
	`,
		payment.StatusCompleted.String(),
		payment.StatusCompleted.String(),
		payment.StatusPending.String(), payment.StatusInitiated.String(),
		payment.StatusPending.String(), payment.StatusInitiated.String(),
		payment.StatusFailed.String(),
		query.VendorID().Bytes(),
	).Row()

	err := row.Scan(
		&completedPaise,
		&stats.CompletedCount,
		&pendingPaise,
		&stats.PendingCount,
		&stats.FailedCount,
	)
	if err != nil {
		return stats, err
	}

	if stats.CompletedAmount, err = kernel.NewMoneyFromPaise(completedPaise); err != nil {
		return stats, err
	}
	if stats.PendingAmount, err = kernel.NewMoneyFromPaise(pendingPaise); err != nil {
		return stats, err
	}

	return stats, nil
}

func (h GetVendorPaymentStatsQueryHandler) loadMonthly(
	ctx context.Context,
	query GetVendorPaymentStatsQuery,
) ([]MonthlyRevenue, error) {
	monthly := make([]MonthlyRevenue, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(p.completed_at, 'YYYY-MM'),
			SUM(p.amount_paise),
			COUNT(*)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE o.vendor_id = ? AND p.status = ?
		GROUP BY 1
		ORDER BY 1 DESC
	`, query.VendorID().Bytes(), payment.StatusCompleted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry MonthlyRevenue
		var amountPaise int64

		if err = rows.Scan(&entry.Month, &amountPaise, &entry.Count); err != nil {
			return nil, err
		}

		if entry.Amount, err = kernel.NewMoneyFromPaise(amountPaise); err != nil {
			return nil, err
		}

		monthly = append(monthly, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return monthly, nil
}
