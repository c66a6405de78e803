package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// CreateDriverCommand represents a request to register a driver in a vendor's fleet.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	vendorID      kernel.UUID
	name          string
	phone         string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(
	vendorID kernel.UUID,
	name string,
	phone string,
	licenseNumber string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setName(name),
		cmd.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// VendorID returns the employing vendor's identifier.
func (c CreateDriverCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Phone returns the driver's contact phone.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// LicenseNumber returns the driving license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *CreateDriverCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
