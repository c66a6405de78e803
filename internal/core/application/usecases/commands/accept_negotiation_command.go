package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAcceptNegotiationCommandIsNotConstructed = errors.New(
	"AcceptNegotiationCommand must be created via NewAcceptNegotiationCommand constructor",
)

// AcceptNegotiationCommand represents either side settling a negotiation at
// the counterparty's latest proposal, converting the quotation into an
// order.
type AcceptNegotiationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	actorID     kernel.UUID
	details     OrderDetails

	guard guard.ConstructorGuard
}

// NewAcceptNegotiationCommand creates a command to settle a negotiation.
// The aggregate rejects acceptance by the side that made the latest
// proposal.
func NewAcceptNegotiationCommand(
	quotationID kernel.UUID,
	actorID kernel.UUID,
	details OrderDetails,
) (AcceptNegotiationCommand, error) {
	cmd := AcceptNegotiationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuotationID(quotationID),
		cmd.setActorID(actorID),
		cmd.setDetails(details),
	); err != nil {
		return AcceptNegotiationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptNegotiationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptNegotiationCommandIsNotConstructed)
}

// QuotationID returns the quotation identifier.
func (c AcceptNegotiationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// ActorID returns the accepting user's identifier.
func (c AcceptNegotiationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Details returns the order address details.
func (c AcceptNegotiationCommand) Details() OrderDetails {
	return c.details
}

func (c *AcceptNegotiationCommand) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return err
	}

	c.quotationID = quotationID
	return nil
}

func (c *AcceptNegotiationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AcceptNegotiationCommand) setDetails(details OrderDetails) error {
	if err := details.validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
