package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateEnquiry handles POST /api/v1/enquiries.
func (s *Server) CreateEnquiry(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateEnquiryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	pickupPoint, err := geoPoint(body.PickupLocation)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryPoint, err := geoPoint(body.DeliveryLocation)
	if err != nil {
		return badRequest(ctx, err)
	}

	truckTypeID, err := kernel.UUIDFromString(body.TruckTypeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateEnquiryCommand(
		customerID,
		body.PickupCity,
		pickupPoint,
		body.DeliveryCity,
		deliveryPoint,
		body.PickupDate.Time,
		truckTypeID,
		body.VehicleCount,
		body.WeightTon,
		body.CargoDescription,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateEnquiry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// GetEnquiries handles GET /api/v1/enquiries. Customers see their own
// enquiries; managers see their assigned worklist.
func (s *Server) GetEnquiries(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	role, err := actorRole(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var query queries.GetEnquiriesQuery
	if role == order.RoleManager {
		query, err = queries.NewGetEnquiriesByManagerQuery(actor)
	} else {
		query, err = queries.NewGetEnquiriesByCustomerQuery(actor)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	enquiries, err := s.handlers.GetEnquiries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		response[i] = EnquiryResponse{
			ID:                 e.ID.String(),
			CustomerID:         e.CustomerID.String(),
			PickupCity:         e.PickupCity,
			DeliveryCity:       e.DeliveryCity,
			PickupDate:         e.PickupDate,
			VehicleCount:       e.VehicleCount,
			WeightTon:          e.WeightTon,
			CargoDescription:   e.CargoDescription,
			Status:             e.Status,
			MiscellaneousRoute: e.MiscellaneousRoute,
			CreatedAt:          e.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPriceRanges handles GET /api/v1/enquiries/:enquiryId/price-ranges.
func (s *Server) GetPriceRanges(ctx echo.Context) error {
	enquiryID, err := pathID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetPriceRangesQuery(enquiryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	ranges, err := s.handlers.GetPriceRanges.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PriceRangeResponse, len(ranges))
	for i, r := range ranges {
		response[i] = PriceRangeResponse{
			ID:            r.ID.String(),
			MinPrice:      r.MinPrice.Rupees(),
			MaxPrice:      r.MaxPrice.Rupees(),
			AvgPrice:      r.AvgPrice.Rupees(),
			VehicleCount:  r.VehicleCount,
			VendorCount:   r.VendorCount,
			Chance:        r.Chance,
			DurationHours: r.DurationHours,
			Miscellaneous: r.Miscellaneous,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectPriceRange handles POST /api/v1/enquiries/:enquiryId/select-range.
func (s *Server) SelectPriceRange(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	enquiryID, err := pathID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body SelectPriceRangeRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	rangeID, err := kernel.UUIDFromString(body.RangeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSelectPriceRangeCommand(enquiryID, rangeID, customerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SelectPriceRange.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendToVendors handles POST /api/v1/enquiries/:enquiryId/send-to-vendors.
func (s *Server) SendToVendors(ctx echo.Context) error {
	managerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	enquiryID, err := pathID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body SendToVendorsRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	vendors := make([]commands.VendorFanout, 0, len(body.Vendors))
	for _, v := range body.Vendors {
		vendorID, vendorErr := kernel.UUIDFromString(v.VendorID)
		if vendorErr != nil {
			return badRequest(ctx, vendorErr)
		}

		price, priceErr := money(v.SuggestedPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr)
		}

		vendors = append(vendors, commands.VendorFanout{
			VendorID:       vendorID,
			SuggestedPrice: price,
			Notes:          v.Notes,
			Urgency:        v.Urgency,
		})
	}

	cmd, err := commands.NewSendToVendorsCommand(enquiryID, managerID, vendors)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.SendToVendors.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVendorRequests handles GET /api/v1/vendor-requests. Vendors see
// their inbox; managers pass ?enquiry_id= to compare responses.
func (s *Server) GetVendorRequests(ctx echo.Context) error {
	var query queries.GetVendorRequestsQuery

	if enquiryParam := ctx.QueryParam("enquiry_id"); enquiryParam != "" {
		enquiryID, err := kernel.UUIDFromString(enquiryParam)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = queries.NewGetVendorRequestsByEnquiryQuery(enquiryID); err != nil {
			return badRequest(ctx, err)
		}
	} else {
		vendorID, err := actorID(ctx)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = queries.NewGetVendorRequestsByVendorQuery(vendorID); err != nil {
			return badRequest(ctx, err)
		}
	}

	requests, err := s.handlers.GetVendorRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]VendorRequestResponse, len(requests))
	for i, r := range requests {
		response[i] = VendorRequestResponse{
			ID:             r.ID.String(),
			EnquiryID:      r.EnquiryID.String(),
			VendorID:       r.VendorID.String(),
			PickupCity:     r.PickupCity,
			DeliveryCity:   r.DeliveryCity,
			SuggestedPrice: r.SuggestedPrice.Rupees(),
			Notes:          r.Notes,
			Urgency:        r.Urgency,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
		}
		if r.ResponsePrice != nil {
			rupees := r.ResponsePrice.Rupees()
			response[i].ResponsePrice = &rupees
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RespondVendorRequest handles POST /api/v1/vendor-requests/:requestId/respond.
func (s *Server) RespondVendorRequest(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := pathID(ctx, "requestId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RespondVendorRequestRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	action, err := commands.VendorResponseActionFromString(body.Action)
	if err != nil {
		return badRequest(ctx, err)
	}

	var counterPrice *kernel.Money
	if body.CounterPrice != nil {
		price, priceErr := money(*body.CounterPrice)
		if priceErr != nil {
			return badRequest(ctx, priceErr)
		}
		counterPrice = &price
	}

	cmd, err := commands.NewRespondVendorRequestCommand(requestID, vendorID, action, counterPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RespondVendorRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmVendor handles POST /api/v1/enquiries/:enquiryId/confirm-vendor.
func (s *Server) ConfirmVendor(ctx echo.Context) error {
	managerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	enquiryID, err := pathID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body ConfirmVendorRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewConfirmVendorCommand(enquiryID, requestID, managerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ConfirmVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
