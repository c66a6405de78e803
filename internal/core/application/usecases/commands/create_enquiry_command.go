package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateEnquiryCommandIsNotConstructed = errors.New(
	"CreateEnquiryCommand must be created via NewCreateEnquiryCommand constructor",
)

// CreateEnquiryCommand represents a customer's freight enquiry: where to
// move what, when, and with how many vehicles.
type CreateEnquiryCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	pickupCity       string
	pickupPoint      kernel.GeoPoint
	deliveryCity     string
	deliveryPoint    kernel.GeoPoint
	pickupDate       time.Time
	truckTypeID      kernel.UUID
	vehicleCount     int
	weightTon        float64
	cargoDescription string

	guard guard.ConstructorGuard
}

// NewCreateEnquiryCommand creates a command to submit a freight enquiry.
func NewCreateEnquiryCommand(
	customerID kernel.UUID,
	pickupCity string,
	pickupPoint kernel.GeoPoint,
	deliveryCity string,
	deliveryPoint kernel.GeoPoint,
	pickupDate time.Time,
	truckTypeID kernel.UUID,
	vehicleCount int,
	weightTon float64,
	cargoDescription string,
) (CreateEnquiryCommand, error) {
	cmd := CreateEnquiryCommand{
		pickupDate:       pickupDate,
		weightTon:        weightTon,
		cargoDescription: cargoDescription,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPickupCity(pickupCity),
		cmd.setPickupPoint(pickupPoint),
		cmd.setDeliveryCity(deliveryCity),
		cmd.setDeliveryPoint(deliveryPoint),
		cmd.setTruckTypeID(truckTypeID),
		cmd.setVehicleCount(vehicleCount),
	); err != nil {
		return CreateEnquiryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateEnquiryCommandIsNotConstructed)
}

// CustomerID returns the enquiring customer's identifier.
func (c CreateEnquiryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupCity returns the pickup city name.
func (c CreateEnquiryCommand) PickupCity() string {
	return c.pickupCity
}

// PickupPoint returns the pickup coordinates.
func (c CreateEnquiryCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

// DeliveryCity returns the delivery city name.
func (c CreateEnquiryCommand) DeliveryCity() string {
	return c.deliveryCity
}

// DeliveryPoint returns the delivery coordinates.
func (c CreateEnquiryCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// PickupDate returns the requested pickup date.
func (c CreateEnquiryCommand) PickupDate() time.Time {
	return c.pickupDate
}

// TruckTypeID returns the requested truck type.
func (c CreateEnquiryCommand) TruckTypeID() kernel.UUID {
	return c.truckTypeID
}

// VehicleCount returns the number of vehicles requested.
func (c CreateEnquiryCommand) VehicleCount() int {
	return c.vehicleCount
}

// WeightTon returns the cargo weight in tonnes.
func (c CreateEnquiryCommand) WeightTon() float64 {
	return c.weightTon
}

// CargoDescription returns the free-form cargo description.
func (c CreateEnquiryCommand) CargoDescription() string {
	return c.cargoDescription
}

func (c *CreateEnquiryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateEnquiryCommand) setPickupCity(pickupCity string) error {
	if pickupCity == "" {
		return errs.NewValueIsRequiredError("pickupCity")
	}

	c.pickupCity = pickupCity
	return nil
}

func (c *CreateEnquiryCommand) setPickupPoint(pickupPoint kernel.GeoPoint) error {
	if err := pickupPoint.Validate(); err != nil {
		return err
	}

	c.pickupPoint = pickupPoint
	return nil
}

func (c *CreateEnquiryCommand) setDeliveryCity(deliveryCity string) error {
	if deliveryCity == "" {
		return errs.NewValueIsRequiredError("deliveryCity")
	}

	c.deliveryCity = deliveryCity
	return nil
}

func (c *CreateEnquiryCommand) setDeliveryPoint(deliveryPoint kernel.GeoPoint) error {
	if err := deliveryPoint.Validate(); err != nil {
		return err
	}

	c.deliveryPoint = deliveryPoint
	return nil
}

func (c *CreateEnquiryCommand) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return err
	}

	c.truckTypeID = truckTypeID
	return nil
}

func (c *CreateEnquiryCommand) setVehicleCount(vehicleCount int) error {
	if vehicleCount <= 0 {
		return errs.NewValueIsInvalidError("vehicleCount")
	}

	c.vehicleCount = vehicleCount
	return nil
}
