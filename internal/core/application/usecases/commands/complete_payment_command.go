package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents the gateway's settlement callback: the
// payment either went through with a transaction id or failed with a
// reason.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	success       bool
	gatewayTxnID  string
	failureReason string

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to settle a payment. Success
// requires a gateway transaction id; failure requires a reason.
func NewCompletePaymentCommand(
	paymentID kernel.UUID,
	success bool,
	gatewayTxnID string,
	failureReason string,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOutcome(success, gatewayTxnID, failureReason),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// PaymentID returns the payment identifier.
func (c CompletePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Success reports whether the gateway settled the payment.
func (c CompletePaymentCommand) Success() bool {
	return c.success
}

// GatewayTransactionID returns the gateway's transaction id on success.
func (c CompletePaymentCommand) GatewayTransactionID() string {
	return c.gatewayTxnID
}

// FailureReason returns the gateway's failure reason.
func (c CompletePaymentCommand) FailureReason() string {
	return c.failureReason
}

func (c *CompletePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CompletePaymentCommand) setOutcome(success bool, gatewayTxnID string, failureReason string) error {
	if success && gatewayTxnID == "" {
		return errs.NewValueIsRequiredError("gatewayTransactionID")
	}
	if !success && failureReason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}

	c.success = success
	c.gatewayTxnID = gatewayTxnID
	c.failureReason = failureReason
	return nil
}
