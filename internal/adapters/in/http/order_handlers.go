package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := actorRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:                o.ID.String(),
			Number:            o.Number,
			PickupAddress:     o.PickupAddress,
			DeliveryAddress:   o.DeliveryAddress,
			ScheduledPickup:   o.ScheduledPickup,
			ScheduledDelivery: o.ScheduledDelivery,
			TotalAmount:       o.TotalAmount.Rupees(),
			EstimatedWeightKg: o.EstimatedWeightKg,
			Status:            o.Status,
			CreatedAt:         o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderHistoryResponse, len(entries))
	for i, entry := range entries {
		response[i] = OrderHistoryResponse{
			Previous:  entry.Previous,
			Next:      entry.Next,
			ActorRole: entry.ActorRole,
			ActorID:   entry.ActorID.String(),
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
		if entry.Location != nil {
			response[i].Location = &GeoPointBody{
				Latitude:  entry.Location.Latitude(),
				Longitude: entry.Location.Longitude(),
			}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := actorRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body UpdateOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	var point *kernel.GeoPoint
	if body.Location != nil {
		location, locErr := geoPoint(*body.Location)
		if locErr != nil {
			return badRequest(ctx, locErr)
		}
		point = &location
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, role, actor, body.Notes, point)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderId/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := actorRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body AssignDriverRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, role, actor, body.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyDelivery handles POST /api/v1/orders/:orderId/verify-delivery.
func (s *Server) VerifyDelivery(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body VerifyDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVerifyDeliveryCommand(orderID, customerID, body.OTP, body.ActualWeightKg)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.VerifyDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
