package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptQuotationCommandIsNotConstructed = errors.New(
	"AcceptQuotationCommand must be created via NewAcceptQuotationCommand constructor",
)

// AcceptQuotationCommand represents a customer taking a quotation at its
// current total, converting it into a binding order.
type AcceptQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	customerID  kernel.UUID
	details     OrderDetails

	guard guard.ConstructorGuard
}

// NewAcceptQuotationCommand creates a command to accept a quotation. The
// order details hold the concrete pickup and delivery addresses.
func NewAcceptQuotationCommand(
	quotationID kernel.UUID,
	customerID kernel.UUID,
	details OrderDetails,
) (AcceptQuotationCommand, error) {
	cmd := AcceptQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setCustomerID(customerID),
		cmd.setDetails(details),
	); err != nil {
		return AcceptQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptQuotationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptQuotationCommandIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (c AcceptQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// CustomerID returns the accepting customer's identifier.
func (c AcceptQuotationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Details returns the order address details.
func (c AcceptQuotationCommand) Details() OrderDetails {
	return c.details
}

func (c *AcceptQuotationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *AcceptQuotationCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AcceptQuotationCommand) setDetails(details OrderDetails) error {
	if err := details.validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
