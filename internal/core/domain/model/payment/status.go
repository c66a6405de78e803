package payment

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──> Initiated ──> Processing ──> Completed ──> Refunded
//	   │            │             ├─────────> Failed
//	   │            └─────────────┘
//	   └──> Cancelled (from Pending or Initiated)
//
// Completed may move to Refunded; Failed, Cancelled and Refunded are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a recorded payment.
	StatusPending

	// StatusInitiated indicates the payment was handed to a gateway.
	StatusInitiated

	// StatusProcessing indicates the gateway is working the payment.
	StatusProcessing

	// StatusCompleted indicates the gateway confirmed the payment.
	StatusCompleted

	// StatusFailed indicates the gateway declined the payment. Final.
	StatusFailed

	// StatusCancelled indicates the payment was abandoned before the
	// gateway settled it. Final.
	StatusCancelled

	// StatusRefunded indicates a completed payment was returned. Final.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusInitiated:  "initiated",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
		StatusCancelled:  "cancelled",
		StatusRefunded:   "refunded",
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
		"status", fmt.Errorf("%q is not a valid payment status", s))
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
	if s <= StatusUnknown || s > StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusRefunded
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusInitiated, StatusCancelled},
		StatusInitiated:  {StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled},
		StatusProcessing: {StatusCompleted, StatusFailed},
		StatusCompleted:  {StatusRefunded},
	}
}

// Transition validates and performs a transition to the target status.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("cannot transition payment from %s to %s", s, target))
}
