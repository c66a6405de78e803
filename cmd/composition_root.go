package cmd

import (
	"freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// NewServerHandlers wires every command and query handler the HTTP server
// delegates to.
func (c *CompositionRoot) NewServerHandlers() http.Handlers {
	return http.Handlers{
		CreateTruckType:         c.CreateCreateTruckTypeCommandHandler(),
		CreateTruck:             c.CreateCreateTruckCommandHandler(),
		CreateDriver:            c.CreateCreateDriverCommandHandler(),
		UpdateTruckAvailability: c.CreateUpdateTruckAvailabilityCommandHandler(),
		GetVendorTrucks:         queries.NewGetVendorTrucksQueryHandler(c.gormDB),

		CreateRoute:     c.CreateCreateRouteCommandHandler(),
		GetVendorRoutes: queries.NewGetVendorRoutesQueryHandler(c.gormDB),

		CreateEnquiry:        c.CreateCreateEnquiryCommandHandler(),
		SelectPriceRange:     c.CreateSelectPriceRangeCommandHandler(),
		SendToVendors:        c.CreateSendToVendorsCommandHandler(),
		RespondVendorRequest: c.CreateRespondVendorRequestCommandHandler(),
		ConfirmVendor:        c.CreateConfirmVendorCommandHandler(),
		GetEnquiries:         queries.NewGetEnquiriesQueryHandler(c.gormDB),
		GetPriceRanges:       queries.NewGetPriceRangesQueryHandler(c.gormDB),
		GetVendorRequests:    queries.NewGetVendorRequestsQueryHandler(c.gormDB),

		CreateQuotationRequest: c.CreateCreateQuotationRequestCommandHandler(),
		CreateQuotation:        c.CreateCreateQuotationCommandHandler(),
		SendQuotation:          c.CreateSendQuotationCommandHandler(),
		NegotiateQuotation:     c.CreateNegotiateQuotationCommandHandler(),
		AcceptQuotation:        c.CreateAcceptQuotationCommandHandler(),
		AcceptNegotiation:      c.CreateAcceptNegotiationCommandHandler(),
		RejectQuotation:        c.CreateRejectQuotationCommandHandler(),
		GetQuotations:          queries.NewGetQuotationsQueryHandler(c.gormDB),
		GetNegotiationHistory:  queries.NewGetNegotiationHistoryQueryHandler(c.gormDB),

		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		VerifyDelivery:    c.CreateVerifyDeliveryCommandHandler(),
		GetOrders:         queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrderHistory:   queries.NewGetOrderHistoryQueryHandler(c.gormDB),

		CreatePayment:         c.CreateCreatePaymentCommandHandler(),
		InitiatePayment:       c.CreateInitiatePaymentCommandHandler(),
		CompletePayment:       c.CreateCompletePaymentCommandHandler(),
		GenerateInvoice:       c.CreateGenerateInvoiceCommandHandler(),
		GetPayments:           queries.NewGetPaymentsQueryHandler(c.gormDB),
		GetPaymentHistory:     queries.NewGetPaymentHistoryQueryHandler(c.gormDB),
		GetVendorPaymentStats: queries.NewGetVendorPaymentStatsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) enquiryUoWFactory() commands.EnquiryUoWFactory {
	return FuncEnquiryUoWFactory(func() commands.EnquiryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) quotationUoWFactory() commands.QuotationUoWFactory {
	return FuncQuotationUoWFactory(func() commands.QuotationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) conversionUoWFactory() commands.ConversionUoWFactory {
	return FuncConversionUoWFactory(func() commands.ConversionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTruckTypeCommandHandler() commands.CreateTruckTypeCommandHandler {
	return commands.NewCreateTruckTypeCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	return commands.NewCreateTruckCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTruckAvailabilityCommandHandler() commands.UpdateTruckAvailabilityCommandHandler {
	return commands.NewUpdateTruckAvailabilityCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCreateEnquiryCommandHandler() commands.CreateEnquiryCommandHandler {
	return commands.NewCreateEnquiryCommandHandler(c.enquiryUoWFactory(), services.NewRouteMatcher())
}

func (c *CompositionRoot) CreateSelectPriceRangeCommandHandler() commands.SelectPriceRangeCommandHandler {
	return commands.NewSelectPriceRangeCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateSendToVendorsCommandHandler() commands.SendToVendorsCommandHandler {
	return commands.NewSendToVendorsCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateRespondVendorRequestCommandHandler() commands.RespondVendorRequestCommandHandler {
	return commands.NewRespondVendorRequestCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmVendorCommandHandler() commands.ConfirmVendorCommandHandler {
	return commands.NewConfirmVendorCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateCreateQuotationRequestCommandHandler() commands.CreateQuotationRequestCommandHandler {
	return commands.NewCreateQuotationRequestCommandHandler(c.quotationUoWFactory())
}

func (c *CompositionRoot) CreateCreateQuotationCommandHandler() commands.CreateQuotationCommandHandler {
	return commands.NewCreateQuotationCommandHandler(c.pricingUoWFactory(), services.NewPriceEstimator())
}

func (c *CompositionRoot) CreateSendQuotationCommandHandler() commands.SendQuotationCommandHandler {
	return commands.NewSendQuotationCommandHandler(c.quotationUoWFactory())
}

func (c *CompositionRoot) CreateNegotiateQuotationCommandHandler() commands.NegotiateQuotationCommandHandler {
	return commands.NewNegotiateQuotationCommandHandler(c.quotationUoWFactory())
}

func (c *CompositionRoot) CreateAcceptQuotationCommandHandler() commands.AcceptQuotationCommandHandler {
	return commands.NewAcceptQuotationCommandHandler(c.conversionUoWFactory(), services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateAcceptNegotiationCommandHandler() commands.AcceptNegotiationCommandHandler {
	return commands.NewAcceptNegotiationCommandHandler(c.conversionUoWFactory(), services.NewOrderDispatcher())
}

func (c *CompositionRoot) CreateRejectQuotationCommandHandler() commands.RejectQuotationCommandHandler {
	return commands.NewRejectQuotationCommandHandler(c.quotationUoWFactory())
}

func (c *CompositionRoot) CreateExpireQuotationsCommandHandler() commands.ExpireQuotationsCommandHandler {
	return commands.NewExpireQuotationsCommandHandler(c.quotationUoWFactory())
}

func (c *CompositionRoot) CreateExpireVendorRequestsCommandHandler() commands.ExpireVendorRequestsCommandHandler {
	return commands.NewExpireVendorRequestsCommandHandler(c.enquiryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateVerifyDeliveryCommandHandler() commands.VerifyDeliveryCommandHandler {
	return commands.NewVerifyDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	return commands.NewGenerateInvoiceCommandHandler(c.paymentUoWFactory())
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncEnquiryUoWFactory func() commands.EnquiryUoW

func (f FuncEnquiryUoWFactory) Create() commands.EnquiryUoW {
	return f()
}

type FuncQuotationUoWFactory func() commands.QuotationUoW

func (f FuncQuotationUoWFactory) Create() commands.QuotationUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncConversionUoWFactory func() commands.ConversionUoW

func (f FuncConversionUoWFactory) Create() commands.ConversionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
