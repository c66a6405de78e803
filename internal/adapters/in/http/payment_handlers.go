package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body CreatePaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	amount, err := money(body.Amount)
	if err != nil {
		return badRequest(ctx, err)
	}

	paymentType, err := payment.TypeFromString(body.PaymentType)
	if err != nil {
		return badRequest(ctx, err)
	}

	method, err := payment.MethodFromString(body.Method)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(orderID, customerID, amount, paymentType, method)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// InitiatePayment handles POST /api/v1/payments/:paymentId/initiate.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	paymentID, err := pathID(ctx, "paymentId")
	if err != nil {
		return badRequest(ctx, err)
	}

	var body InitiatePaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewInitiatePaymentCommand(paymentID, body.GatewayName)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.InitiatePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PaymentWebhook handles POST /api/v1/payments/webhook, the gateway's
// settlement callback.
func (s *Server) PaymentWebhook(ctx echo.Context) error {
	var body PaymentWebhookRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	paymentID, err := kernel.UUIDFromString(body.PaymentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompletePaymentCommand(
		paymentID,
		body.Success,
		body.GatewayTxnID,
		body.FailureReason,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CompletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateInvoice handles POST /api/v1/invoices.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var body GenerateInvoiceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	charges, err := invoiceChargesFromBody(body)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewGenerateInvoiceCommand(orderID, charges)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.handlers.GenerateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// GetPayments handles GET /api/v1/payments. Pass ?order_id= to list one
// order's payments; otherwise the acting customer's payments are listed.
func (s *Server) GetPayments(ctx echo.Context) error {
	var query queries.GetPaymentsQuery

	if orderParam := ctx.QueryParam("order_id"); orderParam != "" {
		orderID, err := kernel.UUIDFromString(orderParam)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = queries.NewGetPaymentsByOrderQuery(orderID); err != nil {
			return badRequest(ctx, err)
		}
	} else {
		customerID, err := actorID(ctx)
		if err != nil {
			return badRequest(ctx, err)
		}
		if query, err = queries.NewGetPaymentsByCustomerQuery(customerID); err != nil {
			return badRequest(ctx, err)
		}
	}

	payments, err := s.handlers.GetPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = PaymentResponse{
			ID:          p.ID.String(),
			Reference:   p.Reference,
			OrderID:     p.OrderID.String(),
			OrderNumber: p.OrderNumber,
			Amount:      p.Amount.Rupees(),
			PaymentType: p.PaymentType,
			Method:      p.Method,
			GatewayName: p.GatewayName,
			Status:      p.Status,
			CompletedAt: p.CompletedAt,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentHistory handles GET /api/v1/payments/:paymentId/history.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	paymentID, err := pathID(ctx, "paymentId")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetPaymentHistoryQuery(paymentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.handlers.GetPaymentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PaymentHistoryResponse, len(entries))
	for i, entry := range entries {
		response[i] = PaymentHistoryResponse{
			Previous:  entry.Previous,
			Next:      entry.Next,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentStats handles GET /api/v1/payments/stats for the acting
// vendor.
func (s *Server) GetPaymentStats(ctx echo.Context) error {
	vendorID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetVendorPaymentStatsQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err)
	}

	stats, err := s.handlers.GetVendorPaymentStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	monthly := make([]MonthlyRevenueResponse, len(stats.Monthly))
	for i, entry := range stats.Monthly {
		monthly[i] = MonthlyRevenueResponse{
			Month:  entry.Month,
			Amount: entry.Amount.Rupees(),
			Count:  entry.Count,
		}
	}

	return ctx.JSON(http.StatusOK, PaymentStatsResponse{
		CompletedAmount: stats.CompletedAmount.Rupees(),
		CompletedCount:  stats.CompletedCount,
		PendingAmount:   stats.PendingAmount.Rupees(),
		PendingCount:    stats.PendingCount,
		FailedCount:     stats.FailedCount,
		Monthly:         monthly,
	})
}

func invoiceChargesFromBody(body GenerateInvoiceRequest) (commands.InvoiceCharges, error) {
	var charges commands.InvoiceCharges
	var err error

	if charges.BaseCharge, err = money(body.BaseCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.FuelCharge, err = money(body.FuelCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.TollCharge, err = money(body.TollCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.LoadingCharge, err = money(body.LoadingCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.UnloadingCharge, err = money(body.UnloadingCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.AdditionalCharge, err = money(body.AdditionalCharge); err != nil {
		return commands.InvoiceCharges{}, err
	}
	if charges.Discount, err = money(body.Discount); err != nil {
		return commands.InvoiceCharges{}, err
	}

	charges.CGSTRate = body.CGSTRate
	charges.SGSTRate = body.SGSTRate
	charges.IGSTRate = body.IGSTRate

	return charges, nil
}
