// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest unit of work that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FleetRepoFactory provides access to the fleet repositories within a transaction.
	FleetRepoFactory interface {
		TruckTypeRepository() ports.TruckTypeRepository
		TruckRepository() ports.TruckRepository
		DriverRepository() ports.DriverRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// EnquiryRepoFactory provides access to the enquiry-side repositories
	// within a transaction.
	EnquiryRepoFactory interface {
		EnquiryRepository() ports.EnquiryRepository
		PriceRangeRepository() ports.PriceRangeRepository
		VendorRequestRepository() ports.VendorRequestRepository
		ManagerRepository() ports.ManagerRepository
	}

	// QuotationRepoFactory provides access to the quotation repositories
	// within a transaction.
	QuotationRepoFactory interface {
		QuotationRequestRepository() ports.QuotationRequestRepository
		QuotationRepository() ports.QuotationRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repositories within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
		InvoiceRepository() ports.InvoiceRepository
	}

	// FleetUoW manages transactions for fleet-only operations.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// EnquiryUoW manages transactions for the enquiry workflow. Route access
	// is included because price range generation matches against vendor routes.
	EnquiryUoW interface {
		TxManager
		EnquiryRepoFactory
		RouteRepoFactory
	}

	// EnquiryUoWFactory creates new enquiry unit of work instances.
	EnquiryUoWFactory interface {
		Create() EnquiryUoW
	}

	// QuotationUoW manages transactions for quotation-only operations.
	QuotationUoW interface {
		TxManager
		QuotationRepoFactory
	}

	// QuotationUoWFactory creates new quotation unit of work instances.
	QuotationUoWFactory interface {
		Create() QuotationUoW
	}

	// PricingUoW manages transactions for quotation creation, which prices
	// the offer against the truck type catalogue.
	PricingUoW interface {
		TxManager
		QuotationRepoFactory
		FleetRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// ConversionUoW manages transactions for quotation acceptance, which
	// atomically converts the winning quotation into an order and dispatches
	// fleet resources.
	ConversionUoW interface {
		TxManager
		QuotationRepoFactory
		OrderRepoFactory
		FleetRepoFactory
	}

	// ConversionUoWFactory creates new conversion unit of work instances.
	ConversionUoWFactory interface {
		Create() ConversionUoW
	}

	// OrderUoW manages transactions for order lifecycle operations together
	// with their fleet side effects.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		FleetRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment operations. Order access is
	// included because a completed full payment confirms its order.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
