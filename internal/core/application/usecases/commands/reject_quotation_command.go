package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRejectQuotationCommandIsNotConstructed = errors.New(
	"RejectQuotationCommand must be created via NewRejectQuotationCommand constructor",
)

// RejectQuotationCommand represents a customer declining a quotation.
type RejectQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	customerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectQuotationCommand creates a command to reject a quotation.
func NewRejectQuotationCommand(quotationID kernel.UUID, customerID kernel.UUID) (RejectQuotationCommand, error) {
	cmd := RejectQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return RejectQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectQuotationCommand) Validate() error {
	return c.guard.Validate(ErrRejectQuotationCommandIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (c RejectQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// CustomerID returns the acting customer's identifier.
func (c RejectQuotationCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *RejectQuotationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *RejectQuotationCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
