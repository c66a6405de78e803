package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrConfirmVendorCommandIsNotConstructed = errors.New(
	"ConfirmVendorCommand must be created via NewConfirmVendorCommand constructor",
)

// ConfirmVendorCommand represents a manager's pick of the winning vendor
// response for an enquiry.
type ConfirmVendorCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	requestID kernel.UUID
	managerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmVendorCommand creates a command to confirm the winning vendor.
func NewConfirmVendorCommand(
	enquiryID kernel.UUID,
	requestID kernel.UUID,
	managerID kernel.UUID,
) (ConfirmVendorCommand, error) {
	cmd := ConfirmVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnquiryID(enquiryID),
		cmd.setRequestID(requestID),
		cmd.setManagerID(managerID),
	); err != nil {
		return ConfirmVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmVendorCommand) Validate() error {
	return c.guard.Validate(ErrConfirmVendorCommandIsNotConstructed)
}

// EnquiryID returns the enquiry identifier.
func (c ConfirmVendorCommand) EnquiryID() kernel.UUID {
	return c.enquiryID
}

// RequestID returns the winning vendor request identifier.
func (c ConfirmVendorCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ManagerID returns the acting manager's identifier.
func (c ConfirmVendorCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c *ConfirmVendorCommand) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return err
	}

	c.enquiryID = enquiryID
	return nil
}

func (c *ConfirmVendorCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ConfirmVendorCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}
