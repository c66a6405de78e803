package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents the customer opening a payment against an
// order.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	amount      kernel.Money
	paymentType payment.Type
	method      payment.Method

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to open a payment.
func NewCreatePaymentCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	paymentType payment.Type,
	method payment.Method,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
		cmd.setPaymentType(paymentType),
		cmd.setMethod(method),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the paying customer's identifier.
func (c CreatePaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the payment amount.
func (c CreatePaymentCommand) Amount() kernel.Money {
	return c.amount
}

// PaymentType returns whether this is an advance, full or balance payment.
func (c CreatePaymentCommand) PaymentType() payment.Type {
	return c.paymentType
}

// Method returns the payment method.
func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

func (c *CreatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreatePaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentCommand) setPaymentType(paymentType payment.Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}

	c.paymentType = paymentType
	return nil
}

func (c *CreatePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
