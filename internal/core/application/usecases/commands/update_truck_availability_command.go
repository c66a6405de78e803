package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateTruckAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateTruckAvailabilityCommand must be created via NewUpdateTruckAvailabilityCommand constructor",
)

// UpdateTruckAvailabilityCommand represents a vendor's request to mark one of
// their trucks as available or busy.
type UpdateTruckAvailabilityCommand struct { //nolint:recvcheck //using for validation
	truckID   kernel.UUID
	vendorID  kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewUpdateTruckAvailabilityCommand creates a command to change truck
// availability.
func NewUpdateTruckAvailabilityCommand(
	truckID kernel.UUID,
	vendorID kernel.UUID,
	available bool,
) (UpdateTruckAvailabilityCommand, error) {
	cmd := UpdateTruckAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return UpdateTruckAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTruckAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTruckAvailabilityCommandIsNotConstructed)
}

// TruckID returns the truck identifier.
func (c UpdateTruckAvailabilityCommand) TruckID() kernel.UUID {
	return c.truckID
}

// VendorID returns the acting vendor's identifier.
func (c UpdateTruckAvailabilityCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Available returns the desired availability.
func (c UpdateTruckAvailabilityCommand) Available() bool {
	return c.available
}

func (c *UpdateTruckAvailabilityCommand) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	c.truckID = truckID
	return nil
}

func (c *UpdateTruckAvailabilityCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}
