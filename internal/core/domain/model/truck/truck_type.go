package truck

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrTruckTypeIsNotConstructed is returned when a TruckType instance was not
// created through NewTruckType or RestoreTruckType.
var ErrTruckTypeIsNotConstructed = errors.New("TruckType must be created via NewTruckType constructor")

// TruckType describes a category of vehicle offered on the marketplace,
// such as "mini", "container" or "trailer". The capacity is the maximum
// load in tons a vehicle of this type can carry.
type TruckType struct {
	id          kernel.UUID
	name        string
	capacityTon float64
	description string

	guard guard.ConstructorGuard
}

// NewTruckType creates a TruckType with a fresh identifier.
func NewTruckType(name string, capacityTon float64, description string) (*TruckType, error) {
	return RestoreTruckType(kernel.NewUUID(), name, capacityTon, description)
}

// RestoreTruckType reconstructs a TruckType from persistent storage.
func RestoreTruckType(id kernel.UUID, name string, capacityTon float64, description string) (*TruckType, error) {
	t := &TruckType{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setCapacityTon(capacityTon),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks that the TruckType was properly constructed.
func (t *TruckType) Validate() error {
	if t == nil {
		return ErrTruckTypeIsNotConstructed
	}
	return t.guard.Validate(ErrTruckTypeIsNotConstructed)
}

// IsEqual compares two truck types by identifier.
func (t *TruckType) IsEqual(other *TruckType) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck type's unique identifier.
func (t *TruckType) ID() kernel.UUID {
	return t.id
}

// Name returns the truck type name.
func (t *TruckType) Name() string {
	return t.name
}

// CapacityTon returns the maximum load in tons.
func (t *TruckType) CapacityTon() float64 {
	return t.capacityTon
}

// Description returns the free-form description.
func (t *TruckType) Description() string {
	return t.description
}

func (t *TruckType) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *TruckType) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *TruckType) setCapacityTon(capacityTon float64) error {
	if capacityTon <= 0 {
		return errs.NewValueIsInvalidError("capacityTon")
	}
	t.capacityTon = capacityTon
	return nil
}
