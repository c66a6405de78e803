package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TruckTypeRepository returns a TruckTypeRepository bound to the current transaction.
	TruckTypeRepository() TruckTypeRepository

	// TruckRepository returns a TruckRepository bound to the current transaction.
	TruckRepository() TruckRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// EnquiryRepository returns an EnquiryRepository bound to the current transaction.
	EnquiryRepository() EnquiryRepository

	// PriceRangeRepository returns a PriceRangeRepository bound to the current transaction.
	PriceRangeRepository() PriceRangeRepository

	// VendorRequestRepository returns a VendorRequestRepository bound to the current transaction.
	VendorRequestRepository() VendorRequestRepository

	// ManagerRepository returns a ManagerRepository bound to the current transaction.
	ManagerRepository() ManagerRepository

	// QuotationRequestRepository returns a QuotationRequestRepository bound to the current transaction.
	QuotationRequestRepository() QuotationRequestRepository

	// QuotationRepository returns a QuotationRepository bound to the current transaction.
	QuotationRepository() QuotationRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the current transaction.
	PaymentRepository() PaymentRepository

	// InvoiceRepository returns an InvoiceRepository bound to the current transaction.
	InvoiceRepository() InvoiceRepository
}
