package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSendQuotationCommandIsNotConstructed = errors.New(
	"SendQuotationCommand must be created via NewSendQuotationCommand constructor",
)

// SendQuotationCommand represents a vendor's release of a pending quotation
// to the customer.
type SendQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	vendorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendQuotationCommand creates a command to send a quotation.
func NewSendQuotationCommand(quotationID kernel.UUID, vendorID kernel.UUID) (SendQuotationCommand, error) {
	cmd := SendQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return SendQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendQuotationCommand) Validate() error {
	return c.guard.Validate(ErrSendQuotationCommandIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (c SendQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// VendorID returns the acting vendor's identifier.
func (c SendQuotationCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *SendQuotationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *SendQuotationCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
