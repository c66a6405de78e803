package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateTruckType handles POST /api/v1/truck-types.
func (s *Server) CreateTruckType(ctx echo.Context) error {
	var body CreateTruckTypeRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateTruckTypeCommand(body.Name, body.CapacityTon, body.Description)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateTruckType.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// CreateTruck handles POST /api/v1/trucks.
func (s *Server) CreateTruck(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateTruckRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	truckTypeID, err := kernel.UUIDFromString(body.TruckTypeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateTruckCommand(
		vendorID,
		truckTypeID,
		body.RegistrationNumber,
		body.ModelName,
		body.ManufactureYear,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateTruck.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreateDriverRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(vendorID, body.Name, body.Phone, body.LicenseNumber)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// UpdateTruckAvailability handles PATCH /api/v1/trucks/:truckId/availability.
func (s *Server) UpdateTruckAvailability(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	truckID, err := pathID(ctx, "truckId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body UpdateTruckAvailabilityRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateTruckAvailabilityCommand(truckID, vendorID, body.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateTruckAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrucks handles GET /api/v1/trucks.
func (s *Server) GetTrucks(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetVendorTrucksQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	trucks, err := s.handlers.GetVendorTrucks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]TruckResponse, len(trucks))
	for i, truck := range trucks {
		response[i] = TruckResponse{
			ID:                 truck.ID.String(),
			RegistrationNumber: truck.RegistrationNumber,
			ModelName:          truck.ModelName,
			ManufactureYear:    truck.ManufactureYear,
			IsAvailable:        truck.IsAvailable,
			TruckTypeName:      truck.TruckTypeName,
			CapacityTon:        truck.CapacityTon,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
