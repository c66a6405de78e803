package truck

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck instance was not
	// created through NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrTruckIsNotAvailable is returned when dispatching a truck that is
	// already engaged on another order.
	ErrTruckIsNotAvailable = errors.New("truck is not available")

	// ErrTruckIsAlreadyAvailable is returned when releasing a truck that is
	// not engaged.
	ErrTruckIsAlreadyAvailable = errors.New("truck is already available")
)

// Truck represents a vendor's vehicle on the marketplace.
//
// Truck follows these invariants:
//   - Must have a valid unique identifier, owning vendor and truck type
//   - Registration number is mandatory and immutable
//   - Availability is flipped only through Dispatch and Release
//   - Can only be created through NewTruck or RestoreTruck
type Truck struct {
	id                 kernel.UUID
	vendorID           kernel.UUID
	truckTypeID        kernel.UUID
	registrationNumber string
	modelName          string
	manufactureYear    int
	isAvailable        bool

	guard guard.ConstructorGuard
}

// NewTruck creates an available Truck with a fresh identifier.
//
// Parameters:
//   - vendorID: owner of the vehicle
//   - truckTypeID: vehicle category
//   - registrationNumber: plate number, must be non-empty
//   - modelName: manufacturer model, informational
//   - manufactureYear: year of manufacture, informational (0 when unknown)
func NewTruck(
	vendorID kernel.UUID,
	truckTypeID kernel.UUID,
	registrationNumber string,
	modelName string,
	manufactureYear int,
) (*Truck, error) {
	return RestoreTruck(kernel.NewUUID(), vendorID, truckTypeID, registrationNumber, modelName, manufactureYear, true)
}

// RestoreTruck reconstructs a Truck from persistent storage, preserving its
// availability at the time of persistence.
func RestoreTruck(
	id kernel.UUID,
	vendorID kernel.UUID,
	truckTypeID kernel.UUID,
	registrationNumber string,
	modelName string,
	manufactureYear int,
	isAvailable bool,
) (*Truck, error) {
	t := &Truck{
		modelName:       modelName,
		manufactureYear: manufactureYear,
		isAvailable:     isAvailable,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setVendorID(vendorID),
		t.setTruckTypeID(truckTypeID),
		t.setRegistrationNumber(registrationNumber),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks that the Truck was properly constructed.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// IsEqual compares two trucks by identifier.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// VendorID returns the owning vendor's identifier.
func (t *Truck) VendorID() kernel.UUID {
	return t.vendorID
}

// TruckTypeID returns the vehicle category identifier.
func (t *Truck) TruckTypeID() kernel.UUID {
	return t.truckTypeID
}

// RegistrationNumber returns the plate number.
func (t *Truck) RegistrationNumber() string {
	return t.registrationNumber
}

// ModelName returns the manufacturer model name.
func (t *Truck) ModelName() string {
	return t.modelName
}

// ManufactureYear returns the year of manufacture, 0 when unknown.
func (t *Truck) ManufactureYear() int {
	return t.manufactureYear
}

// IsAvailable reports whether the truck can be dispatched on a new order.
func (t *Truck) IsAvailable() bool {
	return t.isAvailable
}

// Dispatch engages the truck on an order, marking it unavailable.
// Returns ErrTruckIsNotAvailable if the truck is already engaged.
func (t *Truck) Dispatch() error {
	if !t.isAvailable {
		return ErrTruckIsNotAvailable
	}
	t.isAvailable = false
	return nil
}

// Release frees the truck after an order completes or is cancelled.
// Returns ErrTruckIsAlreadyAvailable if the truck is not engaged.
func (t *Truck) Release() error {
	if t.isAvailable {
		return ErrTruckIsAlreadyAvailable
	}
	t.isAvailable = true
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return fmt.Errorf("vendorID: %w", err)
	}
	t.vendorID = vendorID
	return nil
}

func (t *Truck) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return fmt.Errorf("truckTypeID: %w", err)
	}
	t.truckTypeID = truckTypeID
	return nil
}

func (t *Truck) setRegistrationNumber(registrationNumber string) error {
	if registrationNumber == "" {
		return errs.NewValueIsRequiredError("registrationNumber")
	}
	t.registrationNumber = registrationNumber
	return nil
}
