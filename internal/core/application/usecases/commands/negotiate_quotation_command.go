package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrNegotiateQuotationCommandIsNotConstructed = errors.New(
	"NegotiateQuotationCommand must be created via NewNegotiateQuotationCommand constructor",
)

// NegotiateQuotationCommand represents a counter-offer on a quotation from
// either side of the table.
type NegotiateQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	actorID     kernel.UUID
	proposed    kernel.Money
	message     string

	guard guard.ConstructorGuard
}

// NewNegotiateQuotationCommand creates a command to propose a new amount on
// a quotation. Band, floor, alternation and round-count rules are enforced
// by the aggregate in the handler.
func NewNegotiateQuotationCommand(
	quotationID kernel.UUID,
	actorID kernel.UUID,
	proposed kernel.Money,
	message string,
) (NegotiateQuotationCommand, error) {
	cmd := NegotiateQuotationCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setActorID(actorID),
		cmd.setProposed(proposed),
	); err != nil {
		return NegotiateQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c NegotiateQuotationCommand) Validate() error {
	return c.guard.Validate(ErrNegotiateQuotationCommandIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (c NegotiateQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// ActorID returns the proposing user's identifier.
func (c NegotiateQuotationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Proposed returns the proposed amount.
func (c NegotiateQuotationCommand) Proposed() kernel.Money {
	return c.proposed
}

// Message returns the optional note accompanying the proposal.
func (c NegotiateQuotationCommand) Message() string {
	return c.message
}

func (c *NegotiateQuotationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *NegotiateQuotationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *NegotiateQuotationCommand) setProposed(proposed kernel.Money) error {
	if proposed.IsZero() {
		return errs.NewValueIsInvalidError("proposed")
	}

	c.proposed = proposed
	return nil
}
