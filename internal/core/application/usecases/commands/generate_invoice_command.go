package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
		"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
	)

	// ErrInvoiceAlreadyExists is returned when the order already has an
	// invoice.
	ErrInvoiceAlreadyExists = errors.New("order already has an invoice")
)

// InvoiceCharges is the charge breakdown an invoice is generated from.
// Subtotal, tax and total are derived by the aggregate.
type InvoiceCharges struct {
	BaseCharge       kernel.Money
	FuelCharge       kernel.Money
	TollCharge       kernel.Money
	LoadingCharge    kernel.Money
	UnloadingCharge  kernel.Money
	AdditionalCharge kernel.Money
	Discount         kernel.Money
	CGSTRate         float64
	SGSTRate         float64
	IGSTRate         float64
}

// GenerateInvoiceCommand represents invoice generation for an order.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	charges InvoiceCharges

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate an invoice. Rate
// bounds are enforced by the aggregate; here the base charge must be
// non-zero.
func NewGenerateInvoiceCommand(orderID kernel.UUID, charges InvoiceCharges) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCharges(charges),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c GenerateInvoiceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Charges returns the charge breakdown.
func (c GenerateInvoiceCommand) Charges() InvoiceCharges {
	return c.charges
}

func (c *GenerateInvoiceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateInvoiceCommand) setCharges(charges InvoiceCharges) error {
	if charges.BaseCharge.IsZero() {
		return errs.NewValueIsRequiredError("baseCharge")
	}

	c.charges = charges
	return nil
}
