package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrCreateTruckTypeCommandIsNotConstructed = errors.New(
		"CreateTruckTypeCommand must be created via NewCreateTruckTypeCommand constructor",
	)
	ErrTruckTypeNameIsRequired = errors.New("truck type name is required")
	ErrCapacityIsInvalid       = errors.New("capacity must be greater than 0")
)

// CreateTruckTypeCommand represents a request to register a truck type in the
// marketplace catalogue.
type CreateTruckTypeCommand struct { //nolint:recvcheck //using for validation
	name        string
	capacityTon float64
	description string

	guard guard.ConstructorGuard
}

// NewCreateTruckTypeCommand creates a command to register a truck type.
// Validates that the name is not empty and the capacity is positive.
func NewCreateTruckTypeCommand(name string, capacityTon float64, description string) (CreateTruckTypeCommand, error) {
	cmd := CreateTruckTypeCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCapacityTon(capacityTon),
	); err != nil {
		return CreateTruckTypeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTruckTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckTypeCommandIsNotConstructed)
}

// Name returns the truck type name.
func (c CreateTruckTypeCommand) Name() string {
	return c.name
}

// CapacityTon returns the load capacity in tonnes.
func (c CreateTruckTypeCommand) CapacityTon() float64 {
	return c.capacityTon
}

// Description returns the free-form description.
func (c CreateTruckTypeCommand) Description() string {
	return c.description
}

func (c *CreateTruckTypeCommand) setName(name string) error {
	if name == "" {
		return ErrTruckTypeNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateTruckTypeCommand) setCapacityTon(capacityTon float64) error {
	if capacityTon <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacityTon = capacityTon
	return nil
}
