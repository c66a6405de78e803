package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentsQueryHandler retrieves payment listings from the database.
// Joins the order so customer scoping and the order number come from one
// query.
type GetPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsQueryHandler creates a handler for payment listing queries.
func NewGetPaymentsQueryHandler(db *gorm.DB) GetPaymentsQueryHandler {
	return GetPaymentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the scoped payments, newest first.
func (h GetPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsQuery,
) ([]GetPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var filter string
	var filterID uuid.UUID
	if query.OrderID() != nil {
		filter = "p.order_id"
		filterID = query.OrderID().Bytes()
	} else {
		filter = "o.customer_id"
		filterID = query.CustomerID().Bytes()
	}

	payments := make([]GetPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.reference,
			p.order_id,
			o.number,
			p.amount_paise,
			p.payment_type,
			p.method,
			p.gateway_name,
			p.status,
			p.completed_at,
			p.created_at
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE `+filter+` = ?
		ORDER BY p.created_at DESC
	`, filterID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var paymentResp GetPaymentsQueryResponse
		var id, orderID uuid.UUID
		var amountPaise int64

		err = rows.Scan(
			&id,
			&paymentResp.Reference,
			&orderID,
			&paymentResp.OrderNumber,
			&amountPaise,
			&paymentResp.PaymentType,
			&paymentResp.Method,
			&paymentResp.GatewayName,
			&paymentResp.Status,
			&paymentResp.CompletedAt,
			&paymentResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if paymentResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if paymentResp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		if paymentResp.Amount, err = kernel.NewMoneyFromPaise(amountPaise); err != nil {
			return nil, err
		}

		payments = append(payments, paymentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
