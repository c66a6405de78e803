package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order listings from the database, scoped
// by the actor's role.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the actor's orders, newest first.
// Managers and admins get the full listing.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			pickup_address,
			delivery_address,
			scheduled_pickup,
			scheduled_delivery,
			total_amount_paise,
			estimated_weight_kg,
			status,
			created_at
		FROM orders
	`

	var args []any
	switch query.Role() {
	case order.RoleCustomer:
		sql += " WHERE customer_id = ?"
		args = append(args, query.ActorID().Bytes())
	case order.RoleVendor:
		sql += " WHERE vendor_id = ?"
		args = append(args, query.ActorID().Bytes())
	case order.RoleDriver:
		sql += " WHERE driver_id = ?"
		args = append(args, query.ActorID().Bytes())
	case order.RoleManager, order.RoleAdmin, order.RoleUnknown:
		// managers and admins see all orders
	}
	sql += " ORDER BY created_at DESC"

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id uuid.UUID
		var totalPaise int64

		err = rows.Scan(
			&id,
			&orderResp.Number,
			&orderResp.PickupAddress,
			&orderResp.DeliveryAddress,
			&orderResp.ScheduledPickup,
			&orderResp.ScheduledDelivery,
			&totalPaise,
			&orderResp.EstimatedWeightKg,
			&orderResp.Status,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		if orderResp.TotalAmount, err = kernel.NewMoneyFromPaise(totalPaise); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
