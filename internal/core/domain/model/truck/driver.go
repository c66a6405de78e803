package truck

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrDriverIsNotAvailable is returned when assigning a driver that is
	// already engaged on another order.
	ErrDriverIsNotAvailable = errors.New("driver is not available")

	// ErrDriverIsAlreadyAvailable is returned when releasing a driver that is
	// not engaged.
	ErrDriverIsAlreadyAvailable = errors.New("driver is already available")
)

// Driver represents a vendor's driver. Availability follows the same dispatch
// and release cycle as Truck: assignment to an order marks the driver
// unavailable, completion or cancellation frees them.
type Driver struct {
	id            kernel.UUID
	vendorID      kernel.UUID
	name          string
	phone         string
	licenseNumber string
	isAvailable   bool

	guard guard.ConstructorGuard
}

// NewDriver creates an available Driver with a fresh identifier.
func NewDriver(vendorID kernel.UUID, name string, phone string, licenseNumber string) (*Driver, error) {
	return RestoreDriver(kernel.NewUUID(), vendorID, name, phone, licenseNumber, true)
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	phone string,
	licenseNumber string,
	isAvailable bool,
) (*Driver, error) {
	d := &Driver{
		phone:       phone,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setVendorID(vendorID),
		d.setName(name),
		d.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks that the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// VendorID returns the employing vendor's identifier.
func (d *Driver) VendorID() kernel.UUID {
	return d.vendorID
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone, possibly empty.
func (d *Driver) Phone() string {
	return d.phone
}

// LicenseNumber returns the driving license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// IsAvailable reports whether the driver can be assigned to a new order.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// Assign engages the driver on an order, marking them unavailable.
func (d *Driver) Assign() error {
	if !d.isAvailable {
		return ErrDriverIsNotAvailable
	}
	d.isAvailable = false
	return nil
}

// Release frees the driver after an order completes or is cancelled.
func (d *Driver) Release() error {
	if d.isAvailable {
		return ErrDriverIsAlreadyAvailable
	}
	d.isAvailable = true
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	d.vendorID = vendorID
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	d.licenseNumber = licenseNumber
	return nil
}
