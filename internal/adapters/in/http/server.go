package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// The acting user is taken from the X-User-Id and X-User-Role headers;
// authentication itself happens upstream.
type Server struct {
	handlers Handlers
}

// Handlers bundles the command and query handlers the server delegates to.
type Handlers struct {
	// Fleet
	CreateTruckType         commands.CreateTruckTypeCommandHandler
	CreateTruck             commands.CreateTruckCommandHandler
	CreateDriver            commands.CreateDriverCommandHandler
	UpdateTruckAvailability commands.UpdateTruckAvailabilityCommandHandler
	GetVendorTrucks         queries.GetVendorTrucksQueryHandler

	// Routes
	CreateRoute     commands.CreateRouteCommandHandler
	GetVendorRoutes queries.GetVendorRoutesQueryHandler

	// Enquiries
	CreateEnquiry        commands.CreateEnquiryCommandHandler
	SelectPriceRange     commands.SelectPriceRangeCommandHandler
	SendToVendors        commands.SendToVendorsCommandHandler
	RespondVendorRequest commands.RespondVendorRequestCommandHandler
	ConfirmVendor        commands.ConfirmVendorCommandHandler
	GetEnquiries         queries.GetEnquiriesQueryHandler
	GetPriceRanges       queries.GetPriceRangesQueryHandler
	GetVendorRequests    queries.GetVendorRequestsQueryHandler

	// Quotations
	CreateQuotationRequest commands.CreateQuotationRequestCommandHandler
	CreateQuotation        commands.CreateQuotationCommandHandler
	SendQuotation          commands.SendQuotationCommandHandler
	NegotiateQuotation     commands.NegotiateQuotationCommandHandler
	AcceptQuotation        commands.AcceptQuotationCommandHandler
	AcceptNegotiation      commands.AcceptNegotiationCommandHandler
	RejectQuotation        commands.RejectQuotationCommandHandler
	GetQuotations          queries.GetQuotationsQueryHandler
	GetNegotiationHistory  queries.GetNegotiationHistoryQueryHandler

	// Orders
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AssignDriver      commands.AssignDriverCommandHandler
	VerifyDelivery    commands.VerifyDeliveryCommandHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrderHistory   queries.GetOrderHistoryQueryHandler

	// Payments
	CreatePayment         commands.CreatePaymentCommandHandler
	InitiatePayment       commands.InitiatePaymentCommandHandler
	CompletePayment       commands.CompletePaymentCommandHandler
	GenerateInvoice       commands.GenerateInvoiceCommandHandler
	GetPayments           queries.GetPaymentsQueryHandler
	GetPaymentHistory     queries.GetPaymentHistoryQueryHandler
	GetVendorPaymentStats queries.GetVendorPaymentStatsQueryHandler
}

// NewServer creates an HTTP server delegating to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorID extracts the acting user's identifier from the X-User-Id header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get("X-User-Id")
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("X-User-Id")
	}

	return kernel.UUIDFromString(header)
}

// actorRole extracts the acting user's role from the X-User-Role header.
func actorRole(ctx echo.Context) (order.Role, error) {
	header := ctx.Request().Header.Get("X-User-Role")
	if header == "" {
		return order.RoleUnknown, errs.NewValueIsRequiredError("X-User-Role")
	}

	return order.RoleFromString(header)
}

// pathID parses a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

// money converts a rupee amount from a request body.
func money(amount float64) (kernel.Money, error) {
	return kernel.NewMoneyFromRupees(amount)
}

// geoPoint converts a latitude/longitude body pair.
func geoPoint(body GeoPointBody) (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(body.Latitude, body.Longitude)
}

// badRequest writes a 400 response with the validation failure.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps a use-case failure to an HTTP response. Missing and
// foreign objects come back as 404, duplicates and state conflicts as
// 409, validation failures as 400 and everything else as 500.
func domainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	if isConflict(err) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return badRequest(ctx, err)
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}

func isConflict(err error) bool {
	conflicts := []error{
		commands.ErrDuplicateRoute,
		commands.ErrDuplicateQuotationRequest,
		commands.ErrDuplicateQuotation,
		commands.ErrRequestNotActive,
		commands.ErrOrderAlreadyExists,
		commands.ErrInvoiceAlreadyExists,
		quotation.ErrTooManyActiveRequests,
		quotation.ErrQuotationExpired,
		quotation.ErrNegotiationOutOfTurn,
		quotation.ErrNothingToAccept,
		quotation.ErrCannotAcceptOwnProposal,
		order.ErrOrderNotDelivered,
		order.ErrOTPMismatch,
		order.ErrDriverNotSet,
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}
