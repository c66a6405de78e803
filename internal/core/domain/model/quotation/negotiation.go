package quotation

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrNegotiationIsNotConstructed is returned when a Negotiation instance was
// not created through NewNegotiation or RestoreNegotiation.
var ErrNegotiationIsNotConstructed = errors.New(
	"Negotiation must be created via NewNegotiation constructor")

// Negotiation is one entry in a quotation's negotiation history: a party
// proposing a new amount, optionally with a message.
type Negotiation struct {
	id        kernel.UUID
	initiator Party
	proposed  kernel.Money
	message   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewNegotiation creates a Negotiation entry with a fresh identifier.
func NewNegotiation(initiator Party, proposed kernel.Money, message string, createdAt time.Time) (*Negotiation, error) {
	return RestoreNegotiation(kernel.NewUUID(), initiator, proposed, message, createdAt)
}

// RestoreNegotiation reconstructs a Negotiation from persistent storage.
func RestoreNegotiation(
	id kernel.UUID,
	initiator Party,
	proposed kernel.Money,
	message string,
	createdAt time.Time,
) (*Negotiation, error) {
	n := &Negotiation{
		message:   message,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setInitiator(initiator),
		n.setProposed(proposed),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate checks that the Negotiation was properly constructed.
func (n *Negotiation) Validate() error {
	if n == nil {
		return ErrNegotiationIsNotConstructed
	}
	return n.guard.Validate(ErrNegotiationIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (n *Negotiation) ID() kernel.UUID { return n.id }

// Initiator returns which party proposed this amount.
func (n *Negotiation) Initiator() Party { return n.initiator }

// Proposed returns the proposed amount.
func (n *Negotiation) Proposed() kernel.Money { return n.proposed }

// Message returns the optional free-form message.
func (n *Negotiation) Message() string { return n.message }

// CreatedAt returns the entry creation time.
func (n *Negotiation) CreatedAt() time.Time { return n.createdAt }

func (n *Negotiation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Negotiation) setInitiator(initiator Party) error {
	if err := initiator.Validate(); err != nil {
		return err
	}
	n.initiator = initiator
	return nil
}

func (n *Negotiation) setProposed(proposed kernel.Money) error {
	if proposed.IsZero() {
		return errs.NewValueIsInvalidError("proposed")
	}
	n.proposed = proposed
	return nil
}
