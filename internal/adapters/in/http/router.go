package http

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the server's handlers into the echo router.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	// Fleet
	v1.POST("/truck-types", s.CreateTruckType)
	v1.POST("/trucks", s.CreateTruck)
	v1.GET("/trucks", s.GetTrucks)
	v1.PATCH("/trucks/:truckId/availability", s.UpdateTruckAvailability)
	v1.POST("/drivers", s.CreateDriver)

	// Routes
	v1.POST("/routes", s.CreateRoute)
	v1.GET("/routes", s.GetRoutes)

	// Enquiries
	v1.POST("/enquiries", s.CreateEnquiry)
	v1.GET("/enquiries", s.GetEnquiries)
	v1.GET("/enquiries/:enquiryId/price-ranges", s.GetPriceRanges)
	v1.POST("/enquiries/:enquiryId/select-range", s.SelectPriceRange)
	v1.POST("/enquiries/:enquiryId/send-to-vendors", s.SendToVendors)
	v1.POST("/enquiries/:enquiryId/confirm-vendor", s.ConfirmVendor)
	v1.GET("/vendor-requests", s.GetVendorRequests)
	v1.POST("/vendor-requests/:requestId/respond", s.RespondVendorRequest)

	// Quotations
	v1.POST("/quotation-requests", s.CreateQuotationRequest)
	v1.POST("/quotations", s.CreateQuotation)
	v1.GET("/quotations", s.GetQuotations)
	v1.POST("/quotations/:quotationId/send", s.SendQuotation)
	v1.POST("/quotations/:quotationId/negotiate", s.NegotiateQuotation)
	v1.POST("/quotations/:quotationId/accept", s.AcceptQuotation)
	v1.POST("/quotations/:quotationId/accept-negotiation", s.AcceptNegotiation)
	v1.POST("/quotations/:quotationId/reject", s.RejectQuotation)
	v1.GET("/quotations/:quotationId/negotiations", s.GetNegotiationHistory)

	// Orders
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderId/history", s.GetOrderHistory)
	v1.POST("/orders/:orderId/status", s.UpdateOrderStatus)
	v1.POST("/orders/:orderId/assign-driver", s.AssignDriver)
	v1.POST("/orders/:orderId/verify-delivery", s.VerifyDelivery)

	// Payments
	v1.POST("/payments", s.CreatePayment)
	v1.GET("/payments", s.GetPayments)
	v1.GET("/payments/stats", s.GetPaymentStats)
	v1.GET("/payments/:paymentId/history", s.GetPaymentHistory)
	v1.POST("/payments/:paymentId/initiate", s.InitiatePayment)
	v1.POST("/payments/webhook", s.PaymentWebhook)
	v1.POST("/invoices", s.GenerateInvoice)
}
