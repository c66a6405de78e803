package enquiry

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer enquiry.
//
// State transitions:
//
//	Submitted -> UnderReview -> QuotesGenerated -> QuoteSelected
//	  -> SentToVendors -> VendorResponses -> Confirmed
//
// Cancelled is reachable from every non-final state. Confirmed and
// Cancelled are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusSubmitted is the initial status of a newly created enquiry.
	StatusSubmitted

	// StatusUnderReview indicates route matching is in progress.
	StatusUnderReview

	// StatusQuotesGenerated indicates price ranges have been produced.
	StatusQuotesGenerated

	// StatusQuoteSelected indicates the customer picked a price range and a
	// manager has been assigned.
	StatusQuoteSelected

	// StatusSentToVendors indicates the manager fanned the enquiry out.
	StatusSentToVendors

	// StatusVendorResponses indicates at least one vendor responded.
	StatusVendorResponses

	// StatusConfirmed indicates the manager confirmed a winning vendor.
	StatusConfirmed

	// StatusCancelled indicates the enquiry was withdrawn.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusSubmitted:       "submitted",
		StatusUnderReview:     "under_review",
		StatusQuotesGenerated: "quotes_generated",
		StatusQuoteSelected:   "quote_selected",
		StatusSentToVendors:   "sent_to_vendors",
		StatusVendorResponses: "vendor_responses",
		StatusConfirmed:       "confirmed",
		StatusCancelled:       "cancelled",
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
		"status", fmt.Errorf("%q is not a valid enquiry status", s))
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid enquiry status", s))
	}
	return nil
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// next returns the single forward successor for each non-final status.
func (s Status) next() Status {
	switch s {
	case StatusSubmitted:
		return StatusUnderReview
	case StatusUnderReview:
		return StatusQuotesGenerated
	case StatusQuotesGenerated:
		return StatusQuoteSelected
	case StatusQuoteSelected:
		return StatusSentToVendors
	case StatusSentToVendors:
		return StatusVendorResponses
	case StatusVendorResponses:
		return StatusConfirmed
	default:
		return StatusUnknown
	}
}

// Advance transitions to the given forward status. The workflow is strictly
// linear, so the target must be the immediate successor of the current
// status. VendorResponses may be re-entered as more vendors respond.
func (s Status) Advance(target Status) (Status, error) {
	if s == StatusVendorResponses && target == StatusVendorResponses {
		return StatusVendorResponses, nil
	}
	if s.next() != target || target == StatusUnknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot advance enquiry from %s to %s", s, target),
		)
	}
	return target, nil
}

// Cancel transitions to Cancelled. Allowed from any non-final status.
func (s Status) Cancel() (Status, error) {
	if s.IsFinal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot cancel enquiry in final status %s", s),
		)
	}
	return StatusCancelled, nil
}
