package quotation

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// DefaultValidityHours is the validity window applied when the vendor
	// does not state one.
	DefaultValidityHours = 24

	// MaxNegotiationEntries caps the negotiation history at five rounds per
	// side.
	MaxNegotiationEntries = 10

	// NegotiationBand is the maximum relative step between consecutive
	// proposals: each counter offer must stay within ±15 % of the latest
	// proposed amount.
	NegotiationBand = 0.15

	// NegotiationFloor is the absolute lower bound on any proposal relative
	// to the original quotation total.
	NegotiationFloor = 0.50

	// PricingFloorFactor and PricingCeilingFactor bound the quotation total
	// against the minimum expected price for the vehicle type and distance.
	PricingFloorFactor   = 0.7
	PricingCeilingFactor = 100.0
)

var (
	// ErrQuotationIsNotConstructed is returned when a Quotation instance was
	// not created through NewQuotation or RestoreQuotation.
	ErrQuotationIsNotConstructed = errors.New("Quotation must be created via NewQuotation constructor")

	// ErrQuotationExpired is returned when operating on a quotation past its
	// validity window.
	ErrQuotationExpired = errors.New("quotation has expired")

	// ErrNegotiationLimitReached is returned when the negotiation history is
	// already at MaxNegotiationEntries.
	ErrNegotiationLimitReached = fmt.Errorf(
		"negotiation limit of %d entries reached", MaxNegotiationEntries)

	// ErrNegotiationOutOfTurn is returned when a party proposes twice in a
	// row.
	ErrNegotiationOutOfTurn = errors.New("the other party must respond before you can propose again")

	// ErrNothingToAccept is returned when accepting a negotiation on a
	// quotation with no negotiation entries.
	ErrNothingToAccept = errors.New("quotation has no negotiation entries to accept")

	// ErrCannotAcceptOwnProposal is returned when the party that made the
	// latest proposal tries to accept it.
	ErrCannotAcceptOwnProposal = errors.New("cannot accept your own proposal")
)

// Quotation is the aggregate root for a vendor's offer on a request.
//
// Quotation follows these invariants:
//   - Must have a valid identifier, request, customer and vendor
//   - Has at least one item; the total is the sum of item subtotals and is
//     bounded by PricingFloorFactor and PricingCeilingFactor times the
//     minimum expected price
//   - Status transitions follow the state machine in Status
//   - Negotiation entries respect the limit, alternation, band and floor
//     rules; appending one moves the quotation to Negotiating
//   - The original total is retained as the reference for the negotiation
//     floor even after accepted negotiations rewrite the current total
type Quotation struct {
	id             kernel.UUID
	requestID      kernel.UUID
	customerID     kernel.UUID
	vendorID       kernel.UUID
	items          []*Item
	totalAmount    kernel.Money
	originalAmount kernel.Money
	validityHours  int
	status         Status
	negotiations   []*Negotiation
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewQuotation creates a pending Quotation with a fresh identifier.
//
// The total is computed from the items and validated against minExpected,
// the minimum expected price for the requested vehicle type and distance
// (see services.PriceEstimator): the total must be at least
// PricingFloorFactor and at most PricingCeilingFactor times minExpected.
// A zero validityHours falls back to DefaultValidityHours.
func NewQuotation(
	requestID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	items []*Item,
	minExpected kernel.Money,
	validityHours int,
	now time.Time,
) (*Quotation, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if validityHours == 0 {
		validityHours = DefaultValidityHours
	}

	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Subtotal())
	}
	if total.IsZero() {
		return nil, errs.NewValueIsInvalidError("totalAmount")
	}

	floor, err := minExpected.MulFloat(PricingFloorFactor)
	if err != nil {
		return nil, err
	}
	ceiling, err := minExpected.MulFloat(PricingCeilingFactor)
	if err != nil {
		return nil, err
	}
	if total.LessThan(floor) || total.GreaterThan(ceiling) {
		return nil, errs.NewValueIsOutOfRangeError(
			"totalAmount", total.Rupees(), floor.Rupees(), ceiling.Rupees())
	}

	return RestoreQuotation(kernel.NewUUID(), requestID, customerID, vendorID,
		items, total, total, validityHours, StatusPending, nil, now)
}

// RestoreQuotation reconstructs a Quotation from persistent storage together
// with its items and negotiation history. Pricing bounds are not re-checked:
// they held at creation and accepted negotiations may since have moved the
// total.
func RestoreQuotation(
	id kernel.UUID,
	requestID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	items []*Item,
	totalAmount kernel.Money,
	originalAmount kernel.Money,
	validityHours int,
	status Status,
	negotiations []*Negotiation,
	createdAt time.Time,
) (*Quotation, error) {
	q := &Quotation{
		items:          items,
		totalAmount:    totalAmount,
		originalAmount: originalAmount,
		negotiations:   negotiations,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setID(id),
		q.setRequestID(requestID),
		q.setCustomerID(customerID),
		q.setVendorID(vendorID),
		q.setValidityHours(validityHours),
		q.setStatus(status),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks that the Quotation was properly constructed.
func (q *Quotation) Validate() error {
	if q == nil {
		return ErrQuotationIsNotConstructed
	}
	return q.guard.Validate(ErrQuotationIsNotConstructed)
}

// IsEqual compares two quotations by identifier.
func (q *Quotation) IsEqual(other *Quotation) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quotation's unique identifier.
func (q *Quotation) ID() kernel.UUID { return q.id }

// RequestID returns the answered request's identifier.
func (q *Quotation) RequestID() kernel.UUID { return q.requestID }

// CustomerID returns the requesting customer's identifier.
func (q *Quotation) CustomerID() kernel.UUID { return q.customerID }

// VendorID returns the offering vendor's identifier.
func (q *Quotation) VendorID() kernel.UUID { return q.vendorID }

// Items returns the priced line items.
func (q *Quotation) Items() []*Item { return q.items }

// TotalAmount returns the current total, reflecting accepted negotiations.
func (q *Quotation) TotalAmount() kernel.Money { return q.totalAmount }

// OriginalAmount returns the total as first quoted, the reference for the
// negotiation floor.
func (q *Quotation) OriginalAmount() kernel.Money { return q.originalAmount }

// ValidityHours returns the validity window length.
func (q *Quotation) ValidityHours() int { return q.validityHours }

// Status returns the current status.
func (q *Quotation) Status() Status { return q.status }

// Negotiations returns the negotiation history, oldest first.
func (q *Quotation) Negotiations() []*Negotiation { return q.negotiations }

// CreatedAt returns the quotation creation time.
func (q *Quotation) CreatedAt() time.Time { return q.createdAt }

// ExpiresAt returns the end of the validity window.
func (q *Quotation) ExpiresAt() time.Time {
	return q.createdAt.Add(time.Duration(q.validityHours) * time.Hour)
}

// IsExpired reports whether the validity window has lapsed at the given
// time, regardless of status.
func (q *Quotation) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt())
}

// PartyOf maps a user ID to their side of this quotation, or PartyUnknown
// when the user is neither the customer nor the vendor.
func (q *Quotation) PartyOf(userID kernel.UUID) Party {
	switch {
	case q.customerID.IsEqual(userID):
		return PartyCustomer
	case q.vendorID.IsEqual(userID):
		return PartyVendor
	default:
		return PartyUnknown
	}
}

// LatestNegotiation returns the most recent entry, nil when the history is
// empty.
func (q *Quotation) LatestNegotiation() *Negotiation {
	if len(q.negotiations) == 0 {
		return nil
	}
	return q.negotiations[len(q.negotiations)-1]
}

// Send marks the quotation as delivered to the customer.
func (q *Quotation) Send() error {
	newStatus, err := q.status.Send()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Negotiate appends a counter offer by the given party.
//
// Guards, in order:
//   - the quotation must be negotiable and within its validity window
//     (an expired quotation is lazily moved to Expired)
//   - the history must hold fewer than MaxNegotiationEntries entries
//   - the party must not have made the latest proposal (alternation)
//   - the proposal must stay within NegotiationBand of the latest proposed
//     amount (or of the current total for the opening proposal)
//   - the proposal must be at least NegotiationFloor of the original total
//
// On success the entry is appended and the status becomes Negotiating.
func (q *Quotation) Negotiate(party Party, proposed kernel.Money, message string, now time.Time) error {
	if err := party.Validate(); err != nil {
		return err
	}
	if err := q.ensureNegotiable(now); err != nil {
		return err
	}
	if len(q.negotiations) >= MaxNegotiationEntries {
		return ErrNegotiationLimitReached
	}

	reference := q.totalAmount
	if latest := q.LatestNegotiation(); latest != nil {
		if latest.Initiator() == party {
			return ErrNegotiationOutOfTurn
		}
		reference = latest.Proposed()
	}

	lower, err := reference.MulFloat(1 - NegotiationBand)
	if err != nil {
		return err
	}
	upper, err := reference.MulFloat(1 + NegotiationBand)
	if err != nil {
		return err
	}
	if proposed.LessThan(lower) || proposed.GreaterThan(upper) {
		return errs.NewValueIsOutOfRangeError(
			"proposed", proposed.Rupees(), lower.Rupees(), upper.Rupees())
	}

	floor, err := q.originalAmount.MulFloat(NegotiationFloor)
	if err != nil {
		return err
	}
	if proposed.LessThan(floor) {
		return errs.NewValueIsOutOfRangeError(
			"proposed", proposed.Rupees(), floor.Rupees(), q.originalAmount.Rupees())
	}

	entry, err := NewNegotiation(party, proposed, message, now)
	if err != nil {
		return err
	}

	newStatus, err := q.status.StartNegotiation()
	if err != nil {
		return err
	}

	q.negotiations = append(q.negotiations, entry)
	q.status = newStatus
	return nil
}

// AcceptNegotiation accepts the latest counter offer: the total becomes the
// proposed amount and the quotation is accepted. The acceptor must be a
// party to the quotation and must not be the author of the latest entry.
//
// Order creation from the accepted quotation happens in the command handler
// within the same unit of work.
func (q *Quotation) AcceptNegotiation(acceptor Party, now time.Time) error {
	if err := acceptor.Validate(); err != nil {
		return err
	}
	if err := q.ensureNegotiable(now); err != nil {
		return err
	}

	latest := q.LatestNegotiation()
	if latest == nil {
		return ErrNothingToAccept
	}
	if latest.Initiator() == acceptor {
		return ErrCannotAcceptOwnProposal
	}

	newStatus, err := q.status.Accept()
	if err != nil {
		return err
	}

	q.totalAmount = latest.Proposed()
	q.status = newStatus
	return nil
}

// Accept accepts the quotation at its current total, without negotiation.
// Only the customer accepts quotations; the command handler enforces the
// actor's identity and rejects sibling quotations on the same request.
func (q *Quotation) Accept(now time.Time) error {
	if err := q.ensureNegotiable(now); err != nil {
		return err
	}

	newStatus, err := q.status.Accept()
	if err != nil {
		return err
	}

	q.status = newStatus
	return nil
}

// Reject declines the quotation. Either party may reject.
func (q *Quotation) Reject() error {
	newStatus, err := q.status.Reject()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// Expire moves a quotation past its validity window to Expired. Returns an
// error if the window has not lapsed or the status is final.
func (q *Quotation) Expire(now time.Time) error {
	if !q.IsExpired(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("quotation is valid until %s", q.ExpiresAt()))
	}

	newStatus, err := q.status.Expire()
	if err != nil {
		return err
	}
	q.status = newStatus
	return nil
}

// ensureNegotiable checks status and validity, lazily expiring the
// quotation when the window has lapsed.
func (q *Quotation) ensureNegotiable(now time.Time) error {
	if !q.status.IsNegotiable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("quotation in status %s is not negotiable", q.status))
	}
	if q.IsExpired(now) {
		q.status = StatusExpired
		return ErrQuotationExpired
	}
	return nil
}

func (q *Quotation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quotation) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return fmt.Errorf("requestID: %w", err)
	}
	q.requestID = requestID
	return nil
}

func (q *Quotation) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	q.customerID = customerID
	return nil
}

func (q *Quotation) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return fmt.Errorf("vendorID: %w", err)
	}
	q.vendorID = vendorID
	return nil
}

func (q *Quotation) setValidityHours(validityHours int) error {
	if validityHours <= 0 {
		return errs.NewValueIsInvalidError("validityHours")
	}
	q.validityHours = validityHours
	return nil
}

func (q *Quotation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}
