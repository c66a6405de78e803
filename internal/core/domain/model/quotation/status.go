package quotation

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a quotation.
//
// State transitions:
//
//	Pending ──┬──> Negotiating ──┬──> Accepted
//	Sent    ──┤                  ├──> Rejected
//	          │                  └──> Expired
//	          ├──> Accepted
//	          ├──> Rejected
//	          └──> Expired
//
// Accepted, Rejected and Expired are final states with no further
// transitions allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly priced quotation.
	StatusPending

	// StatusSent indicates the quotation has been delivered to the customer.
	StatusSent

	// StatusNegotiating indicates at least one negotiation entry exists.
	StatusNegotiating

	// StatusAccepted indicates the customer accepted the quotation.
	// This is a final state.
	StatusAccepted

	// StatusRejected indicates either side declined. This is a final state.
	StatusRejected

	// StatusExpired indicates the validity window lapsed. This is a final
	// state.
	StatusExpired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusPending:     "pending",
		StatusSent:        "sent",
		StatusNegotiating: "negotiating",
		StatusAccepted:    "accepted",
		StatusRejected:    "rejected",
		StatusExpired:     "expired",
	}
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid quotation status", s))
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusExpired {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid quotation status", s))
	}
	return nil
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusExpired
}

// IsNegotiable reports whether negotiation entries may be appended.
func (s Status) IsNegotiable() bool {
	return s == StatusPending || s == StatusSent || s == StatusNegotiating
}

// Send transitions the status to Sent.
//
// Valid transitions:
//   - Pending -> Sent
func (s Status) Send() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot send quotation in status %s", s))
	}
	return StatusSent, nil
}

// StartNegotiation transitions the status to Negotiating.
//
// Valid transitions:
//   - Pending -> Negotiating
//   - Sent -> Negotiating
//   - Negotiating -> Negotiating (further rounds)
func (s Status) StartNegotiation() (Status, error) {
	if !s.IsNegotiable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot negotiate quotation in status %s", s))
	}
	return StatusNegotiating, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//   - Sent -> Accepted
//   - Negotiating -> Accepted
func (s Status) Accept() (Status, error) {
	if !s.IsNegotiable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot accept quotation in status %s", s))
	}
	return StatusAccepted, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//   - Sent -> Rejected
//   - Negotiating -> Rejected
func (s Status) Reject() (Status, error) {
	if !s.IsNegotiable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot reject quotation in status %s", s))
	}
	return StatusRejected, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Pending -> Expired
//   - Sent -> Expired
//   - Negotiating -> Expired
func (s Status) Expire() (Status, error) {
	if !s.IsNegotiable() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot expire quotation in status %s", s))
	}
	return StatusExpired, nil
}
