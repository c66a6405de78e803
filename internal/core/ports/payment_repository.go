package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetAllByOrder retrieves every payment recorded against the order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetAllByUser retrieves every payment made by the user.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*payment.Payment, error)
}

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// Add persists a new invoice.
	Add(ctx context.Context, aggregate *payment.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *payment.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Invoice, error)

	// GetByOrder retrieves the invoice generated for the order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Invoice, error)

	// NextDailySequence returns the next invoice sequence number for the
	// given day, starting at 1. Invoice numbers embed the day and a
	// four-digit sequence.
	NextDailySequence(ctx context.Context, day time.Time) (int, error)
}
