package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSendToVendorsCommandIsNotConstructed = errors.New(
	"SendToVendorsCommand must be created via NewSendToVendorsCommand constructor",
)

// VendorFanout is one vendor's entry in a manager's fan-out: who to ask and
// at what suggested price.
type VendorFanout struct {
	VendorID       kernel.UUID
	SuggestedPrice kernel.Money
	Notes          string
	Urgency        string
}

// SendToVendorsCommand represents a manager's fan-out of an enquiry to a set
// of vendors.
type SendToVendorsCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	managerID kernel.UUID
	vendors   []VendorFanout

	guard guard.ConstructorGuard
}

// NewSendToVendorsCommand creates a command to fan an enquiry out to
// vendors. At least one vendor entry is required.
func NewSendToVendorsCommand(
	enquiryID kernel.UUID,
	managerID kernel.UUID,
	vendors []VendorFanout,
) (SendToVendorsCommand, error) {
	cmd := SendToVendorsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnquiryID(enquiryID),
		cmd.setManagerID(managerID),
		cmd.setVendors(vendors),
	); err != nil {
		return SendToVendorsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendToVendorsCommand) Validate() error {
	return c.guard.Validate(ErrSendToVendorsCommandIsNotConstructed)
}

// EnquiryID returns the enquiry identifier.
func (c SendToVendorsCommand) EnquiryID() kernel.UUID {
	return c.enquiryID
}

// ManagerID returns the acting manager's identifier.
func (c SendToVendorsCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Vendors returns the fan-out entries.
func (c SendToVendorsCommand) Vendors() []VendorFanout {
	return c.vendors
}

func (c *SendToVendorsCommand) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return err
	}

	c.enquiryID = enquiryID
	return nil
}

func (c *SendToVendorsCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *SendToVendorsCommand) setVendors(vendors []VendorFanout) error {
	if len(vendors) == 0 {
		return errs.NewValueIsRequiredError("vendors")
	}

	for _, v := range vendors {
		if err := v.VendorID.Validate(); err != nil {
			return err
		}
		if v.SuggestedPrice.IsZero() {
			return errs.NewValueIsInvalidError("suggestedPrice")
		}
	}

	c.vendors = vendors
	return nil
}
