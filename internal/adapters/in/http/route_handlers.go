package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateRouteRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	origin, err := endpointFromBody(body.Origin)
	if err != nil {
		return badRequest(ctx, err)
	}

	destination, err := endpointFromBody(body.Destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	stops := make([]*route.Stop, 0, len(body.Stops))
	for _, stopBody := range body.Stops {
		stop, stopErr := stopFromBody(stopBody)
		if stopErr != nil {
			return badRequest(ctx, stopErr)
		}
		stops = append(stops, stop)
	}

	pricing := make([]*route.SegmentPricing, 0, len(body.Pricing))
	for _, pricingBody := range body.Pricing {
		segment, segErr := segmentPricingFromBody(pricingBody)
		if segErr != nil {
			return badRequest(ctx, segErr)
		}
		pricing = append(pricing, segment)
	}

	cmd, err := commands.NewCreateRouteCommand(
		vendorID,
		origin,
		destination,
		body.DistanceKm,
		body.DurationHours,
		body.Frequency,
		stops,
		pricing,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// GetRoutes handles GET /api/v1/routes.
func (s *Server) GetRoutes(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetVendorRoutesQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	routes, err := s.handlers.GetVendorRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]RouteResponse, len(routes))
	for i, r := range routes {
		response[i] = RouteResponse{
			ID:              r.ID.String(),
			OriginCity:      r.OriginCity,
			OriginPincode:   r.OriginPincode,
			DestinationCity: r.DestinationCity,
			DestPincode:     r.DestPincode,
			DistanceKm:      r.DistanceKm,
			DurationHours:   r.DurationHours,
			Frequency:       r.Frequency,
			IsActive:        r.IsActive,
			StopCount:       r.StopCount,
			PricingCount:    r.PricingCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func endpointFromBody(body EndpointBody) (route.Endpoint, error) {
	pincode, err := kernel.NewPincode(body.Pincode)
	if err != nil {
		return route.Endpoint{}, err
	}

	point, err := geoPoint(body.Location)
	if err != nil {
		return route.Endpoint{}, err
	}

	return route.NewEndpoint(body.City, body.State, pincode, point)
}

func stopFromBody(body StopBody) (*route.Stop, error) {
	point, err := geoPoint(body.Location)
	if err != nil {
		return nil, err
	}

	return route.NewStop(
		body.City,
		point,
		body.StopOrder,
		body.DistanceFromOriginKm,
		body.CanPickup,
		body.CanDrop,
	)
}

func segmentPricingFromBody(body SegmentPricingBody) (*route.SegmentPricing, error) {
	truckTypeID, err := kernel.UUIDFromString(body.TruckTypeID)
	if err != nil {
		return nil, err
	}

	amounts := make([]kernel.Money, 0, 8)
	for _, rupees := range []float64{
		body.BaseCharge, body.FuelCharge, body.TollCharge, body.LoadingCharge,
		body.UnloadingCharge, body.PricePerKm, body.MinPrice, body.MaxPrice,
	} {
		amount, amountErr := money(rupees)
		if amountErr != nil {
			return nil, amountErr
		}
		amounts = append(amounts, amount)
	}

	return route.NewSegmentPricing(
		truckTypeID,
		body.FromCity,
		body.ToCity,
		amounts[0], amounts[1], amounts[2], amounts[3],
		amounts[4], amounts[5], amounts[6], amounts[7],
		body.CapacityTon,
		body.AvailableVehicles,
	)
}
