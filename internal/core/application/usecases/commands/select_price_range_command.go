package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrSelectPriceRangeCommandIsNotConstructed = errors.New(
	"SelectPriceRangeCommand must be created via NewSelectPriceRangeCommand constructor",
)

// SelectPriceRangeCommand represents a customer's choice of one of the
// generated price ranges for their enquiry.
type SelectPriceRangeCommand struct { //nolint:recvcheck //using for validation
	enquiryID  kernel.UUID
	rangeID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectPriceRangeCommand creates a command to select a price range.
func NewSelectPriceRangeCommand(
	enquiryID kernel.UUID,
	rangeID kernel.UUID,
	customerID kernel.UUID,
) (SelectPriceRangeCommand, error) {
	cmd := SelectPriceRangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnquiryID(enquiryID),
		cmd.setRangeID(rangeID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return SelectPriceRangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPriceRangeCommand) Validate() error {
	return c.guard.Validate(ErrSelectPriceRangeCommandIsNotConstructed)
}

// EnquiryID returns the enquiry identifier.
func (c SelectPriceRangeCommand) EnquiryID() kernel.UUID {
	return c.enquiryID
}

// RangeID returns the chosen price range identifier.
func (c SelectPriceRangeCommand) RangeID() kernel.UUID {
	return c.rangeID
}

// CustomerID returns the acting customer's identifier.
func (c SelectPriceRangeCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *SelectPriceRangeCommand) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return err
	}

	c.enquiryID = enquiryID
	return nil
}

func (c *SelectPriceRangeCommand) setRangeID(rangeID kernel.UUID) error {
	if err := rangeID.Validate(); err != nil {
		return err
	}

	c.rangeID = rangeID
	return nil
}

func (c *SelectPriceRangeCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
