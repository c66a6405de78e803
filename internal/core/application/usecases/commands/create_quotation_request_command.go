package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateQuotationRequestCommandIsNotConstructed = errors.New(
		"CreateQuotationRequestCommand must be created via NewCreateQuotationRequestCommand constructor",
	)

	// ErrDuplicateQuotationRequest is returned when the customer already has
	// a request for the same corridor and dates.
	ErrDuplicateQuotationRequest = errors.New(
		"an identical quotation request already exists for this customer")
)

// CreateQuotationRequestCommand represents a customer's call for vendor
// quotations on a corridor.
type CreateQuotationRequestCommand struct { //nolint:recvcheck //using for validation
	customerID    kernel.UUID
	originPincode kernel.Pincode
	destPincode   kernel.Pincode
	pickupDate    time.Time
	dropDate      time.Time
	weight        float64
	weightUnit    quotation.WeightUnit
	truckTypeID   kernel.UUID
	urgency       string

	guard guard.ConstructorGuard
}

// NewCreateQuotationRequestCommand creates a command to open a quotation
// request. Lead-time, duration and weight guards are enforced by the domain
// constructor in the handler; here only structural validity is checked.
func NewCreateQuotationRequestCommand(
	customerID kernel.UUID,
	originPincode kernel.Pincode,
	destPincode kernel.Pincode,
	pickupDate time.Time,
	dropDate time.Time,
	weight float64,
	weightUnit quotation.WeightUnit,
	truckTypeID kernel.UUID,
	urgency string,
) (CreateQuotationRequestCommand, error) {
	cmd := CreateQuotationRequestCommand{
		pickupDate: pickupDate,
		dropDate:   dropDate,
		urgency:    urgency,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOriginPincode(originPincode),
		cmd.setDestPincode(destPincode),
		cmd.setWeight(weight, weightUnit),
		cmd.setTruckTypeID(truckTypeID),
	); err != nil {
		return CreateQuotationRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuotationRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuotationRequestCommandIsNotConstructed)
}

// CustomerID returns the requesting customer's identifier.
func (c CreateQuotationRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OriginPincode returns the origin postal code.
func (c CreateQuotationRequestCommand) OriginPincode() kernel.Pincode {
	return c.originPincode
}

// DestinationPincode returns the destination postal code.
func (c CreateQuotationRequestCommand) DestinationPincode() kernel.Pincode {
	return c.destPincode
}

// PickupDate returns the requested pickup date.
func (c CreateQuotationRequestCommand) PickupDate() time.Time {
	return c.pickupDate
}

// DropDate returns the requested drop date.
func (c CreateQuotationRequestCommand) DropDate() time.Time {
	return c.dropDate
}

// Weight returns the cargo weight in the stated unit.
func (c CreateQuotationRequestCommand) Weight() float64 {
	return c.weight
}

// WeightUnit returns the unit the weight is stated in.
func (c CreateQuotationRequestCommand) WeightUnit() quotation.WeightUnit {
	return c.weightUnit
}

// TruckTypeID returns the requested vehicle type.
func (c CreateQuotationRequestCommand) TruckTypeID() kernel.UUID {
	return c.truckTypeID
}

// Urgency returns the urgency hint.
func (c CreateQuotationRequestCommand) Urgency() string {
	return c.urgency
}

func (c *CreateQuotationRequestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateQuotationRequestCommand) setOriginPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}

	c.originPincode = pincode
	return nil
}

func (c *CreateQuotationRequestCommand) setDestPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}

	c.destPincode = pincode
	return nil
}

func (c *CreateQuotationRequestCommand) setWeight(weight float64, unit quotation.WeightUnit) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	if _, err := unit.ToKg(weight); err != nil {
		return err
	}

	c.weight = weight
	c.weightUnit = unit
	return nil
}

func (c *CreateQuotationRequestCommand) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return err
	}

	c.truckTypeID = truckTypeID
	return nil
}
