package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateTruckCommandIsNotConstructed = errors.New(
		"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
	)
	ErrRegistrationNumberIsRequired = errors.New("registration number is required")
)

// CreateTruckCommand represents a request to register a truck in a vendor's fleet.
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	vendorID           kernel.UUID
	truckTypeID        kernel.UUID
	registrationNumber string
	modelName          string
	manufactureYear    int

	guard guard.ConstructorGuard
}

// NewCreateTruckCommand creates a command to register a truck.
func NewCreateTruckCommand(
	vendorID kernel.UUID,
	truckTypeID kernel.UUID,
	registrationNumber string,
	modelName string,
	manufactureYear int,
) (CreateTruckCommand, error) {
	cmd := CreateTruckCommand{
		modelName:       modelName,
		manufactureYear: manufactureYear,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setTruckTypeID(truckTypeID),
		cmd.setRegistrationNumber(registrationNumber),
	); err != nil {
		return CreateTruckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

// VendorID returns the owning vendor's identifier.
func (c CreateTruckCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// TruckTypeID returns the truck type identifier.
func (c CreateTruckCommand) TruckTypeID() kernel.UUID {
	return c.truckTypeID
}

// RegistrationNumber returns the vehicle registration number.
func (c CreateTruckCommand) RegistrationNumber() string {
	return c.registrationNumber
}

// ModelName returns the vehicle model name.
func (c CreateTruckCommand) ModelName() string {
	return c.modelName
}

// ManufactureYear returns the vehicle manufacture year.
func (c CreateTruckCommand) ManufactureYear() int {
	return c.manufactureYear
}

func (c *CreateTruckCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateTruckCommand) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return err
	}

	c.truckTypeID = truckTypeID
	return nil
}

func (c *CreateTruckCommand) setRegistrationNumber(registrationNumber string) error {
	if registrationNumber == "" {
		return ErrRegistrationNumberIsRequired
	}

	c.registrationNumber = registrationNumber
	return nil
}
