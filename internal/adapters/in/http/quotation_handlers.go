package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/quotation"

	"github.com/labstack/echo/v4"
)

// CreateQuotationRequest handles POST /api/v1/quotation-requests.
func (s *Server) CreateQuotationRequest(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateQuotationRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	originPincode, err := kernel.NewPincode(body.OriginPincode)
	if err != nil {
		return badRequest(ctx, err)
	}

	destPincode, err := kernel.NewPincode(body.DestinationPincode)
	if err != nil {
		return badRequest(ctx, err)
	}

	weightUnit, err := quotation.WeightUnitFromString(body.WeightUnit)
	if err != nil {
		return badRequest(ctx, err)
	}

	truckTypeID, err := kernel.UUIDFromString(body.TruckTypeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateQuotationRequestCommand(
		customerID,
		originPincode,
		destPincode,
		body.PickupDate.Time,
		body.DropDate.Time,
		body.Weight,
		weightUnit,
		truckTypeID,
		body.Urgency,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateQuotationRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// CreateQuotation handles POST /api/v1/quotations.
func (s *Server) CreateQuotation(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateQuotationRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]*quotation.Item, 0, len(body.Items))
	for _, itemBody := range body.Items {
		item, itemErr := quotationItemFromBody(itemBody)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateQuotationCommand(
		requestID,
		vendorID,
		items,
		body.DistanceKm,
		body.ValidityHours,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateQuotation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// GetQuotations handles GET /api/v1/quotations. Pass ?request_id= to
// list quotations against one request; otherwise vendors get their own
// quotations and customers the quotations they received.
func (s *Server) GetQuotations(ctx echo.Context) error {
	var query queries.GetQuotationsQuery

	if requestParam := ctx.QueryParam("request_id"); requestParam != "" {
		requestID, err := kernel.UUIDFromString(requestParam)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = queries.NewGetQuotationsByRequestQuery(requestID); err != nil {
			return badRequest(ctx, err)
		}
	} else {
		actor, err := actorID(ctx)
		if err != nil {
			return badRequest(ctx, err)
		}

		role, err := actorRole(ctx)
		if err != nil {
			return badRequest(ctx, err)
		}

		if role == order.RoleVendor {
			query, err = queries.NewGetQuotationsByVendorQuery(actor)
		} else {
			query, err = queries.NewGetQuotationsByCustomerQuery(actor)
		}
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	quotations, err := s.handlers.GetQuotations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		response[i] = QuotationResponse{
			ID:               q.ID.String(),
			RequestID:        q.RequestID.String(),
			VendorID:         q.VendorID.String(),
			TotalAmount:      q.TotalAmount.Rupees(),
			OriginalAmount:   q.OriginalAmount.Rupees(),
			ValidityHours:    q.ValidityHours,
			Status:           q.Status,
			ItemCount:        q.ItemCount,
			NegotiationCount: q.NegotiationCount,
			CreatedAt:        q.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SendQuotation handles POST /api/v1/quotations/:quotationId/send.
func (s *Server) SendQuotation(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSendQuotationCommand(quotationID, vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SendQuotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NegotiateQuotation handles POST /api/v1/quotations/:quotationId/negotiate.
func (s *Server) NegotiateQuotation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NegotiateQuotationRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	proposed, err := money(body.Proposed)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewNegotiateQuotationCommand(quotationID, actor, proposed, body.Message)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.NegotiateQuotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptQuotation handles POST /api/v1/quotations/:quotationId/accept.
// Accepting converts the quotation into an order.
func (s *Server) AcceptQuotation(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body OrderDetailsBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	details, err := orderDetailsFromBody(body)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptQuotationCommand(quotationID, customerID, details)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := s.handlers.AcceptQuotation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderIDResponse{OrderID: orderID.String()})
}

// AcceptNegotiation handles POST /api/v1/quotations/:quotationId/accept-negotiation.
// Either party settles on the other side's latest proposal; the quotation
// converts into an order.
func (s *Server) AcceptNegotiation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body OrderDetailsBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	details, err := orderDetailsFromBody(body)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptNegotiationCommand(quotationID, actor, details)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := s.handlers.AcceptNegotiation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderIDResponse{OrderID: orderID.String()})
}

// RejectQuotation handles POST /api/v1/quotations/:quotationId/reject.
func (s *Server) RejectQuotation(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectQuotationCommand(quotationID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RejectQuotation.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNegotiationHistory handles GET /api/v1/quotations/:quotationId/negotiations.
func (s *Server) GetNegotiationHistory(ctx echo.Context) error {
	quotationID, err := pathID(ctx, "quotationId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetNegotiationHistoryQuery(quotationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.handlers.GetNegotiationHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]NegotiationResponse, len(entries))
	for i, entry := range entries {
		response[i] = NegotiationResponse{
			Initiator: entry.Initiator,
			Proposed:  entry.Proposed.Rupees(),
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func quotationItemFromBody(body QuotationItemBody) (*quotation.Item, error) {
	truckTypeID, err := kernel.UUIDFromString(body.TruckTypeID)
	if err != nil {
		return nil, err
	}

	var truckID *kernel.UUID
	if body.TruckID != nil {
		id, idErr := kernel.UUIDFromString(*body.TruckID)
		if idErr != nil {
			return nil, idErr
		}
		truckID = &id
	}

	unitPrice, err := money(body.UnitPrice)
	if err != nil {
		return nil, err
	}

	return quotation.NewItem(truckTypeID, truckID, body.Quantity, unitPrice)
}

func orderDetailsFromBody(body OrderDetailsBody) (commands.OrderDetails, error) {
	pickupPoint, err := geoPoint(body.PickupLocation)
	if err != nil {
		return commands.OrderDetails{}, err
	}

	deliveryPoint, err := geoPoint(body.DeliveryLocation)
	if err != nil {
		return commands.OrderDetails{}, err
	}

	return commands.OrderDetails{
		PickupAddress:    body.PickupAddress,
		PickupPoint:      pickupPoint,
		DeliveryAddress:  body.DeliveryAddress,
		DeliveryPoint:    deliveryPoint,
		CargoDescription: body.CargoDescription,
	}, nil
}
