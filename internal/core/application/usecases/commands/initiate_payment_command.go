package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand represents handing a pending payment to a gateway.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	gatewayName string

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to initiate a payment with
// the named gateway.
func NewInitiatePaymentCommand(paymentID kernel.UUID, gatewayName string) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setGatewayName(gatewayName),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// PaymentID returns the payment identifier.
func (c InitiatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// GatewayName returns the gateway handling the payment.
func (c InitiatePaymentCommand) GatewayName() string {
	return c.gatewayName
}

func (c *InitiatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *InitiatePaymentCommand) setGatewayName(gatewayName string) error {
	if gatewayName == "" {
		return errs.NewValueIsRequiredError("gatewayName")
	}

	c.gatewayName = gatewayName
	return nil
}
