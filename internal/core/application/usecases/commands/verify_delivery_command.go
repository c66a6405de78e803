package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrVerifyDeliveryCommandIsNotConstructed = errors.New(
	"VerifyDeliveryCommand must be created via NewVerifyDeliveryCommand constructor",
)

// VerifyDeliveryCommand represents the customer confirming delivery with
// the OTP handed over by the driver, optionally recording the weighed
// cargo.
type VerifyDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	otp            string
	actualWeightKg *float64

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryCommand creates a command to confirm delivery by OTP.
func NewVerifyDeliveryCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	otp string,
	actualWeightKg *float64,
) (VerifyDeliveryCommand, error) {
	cmd := VerifyDeliveryCommand{
		actualWeightKg: actualWeightKg,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOTP(otp),
	); err != nil {
		return VerifyDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c VerifyDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer's identifier.
func (c VerifyDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// OTP returns the presented one-time password.
func (c VerifyDeliveryCommand) OTP() string {
	return c.otp
}

// ActualWeightKg returns the weighed cargo, when recorded.
func (c VerifyDeliveryCommand) ActualWeightKg() *float64 {
	return c.actualWeightKg
}

func (c *VerifyDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *VerifyDeliveryCommand) setOTP(otp string) error {
	if otp == "" {
		return errs.NewValueIsRequiredError("otp")
	}

	c.otp = otp
	return nil
}
