package quotation

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Party identifies which side of a quotation performs an action: the
// customer who requested transport or the vendor who priced it.
type Party int

const (
	// PartyUnknown represents an invalid party value.
	PartyUnknown Party = iota

	// PartyCustomer is the requesting customer.
	PartyCustomer

	// PartyVendor is the offering vendor.
	PartyVendor
)

// PartyFromString parses a persisted party string.
func PartyFromString(s string) (Party, error) {
	switch s {
	case "customer":
		return PartyCustomer, nil
	case "vendor":
		return PartyVendor, nil
	default:
		return PartyUnknown, errs.NewValueIsInvalidErrorWithCause(
			"party", fmt.Errorf("%q is not a valid party", s))
	}
}

// String returns "customer" or "vendor".
func (p Party) String() string {
	switch p {
	case PartyCustomer:
		return "customer"
	case PartyVendor:
		return "vendor"
	default:
		return "unknown"
	}
}

// Validate checks if the Party value is valid.
func (p Party) Validate() error {
	if p != PartyCustomer && p != PartyVendor {
		return errs.NewValueIsInvalidErrorWithCause(
			"party", fmt.Errorf("%d is not a valid party", p))
	}
	return nil
}

// Opposite returns the other side of the negotiation table.
func (p Party) Opposite() Party {
	switch p {
	case PartyCustomer:
		return PartyVendor
	case PartyVendor:
		return PartyCustomer
	default:
		return PartyUnknown
	}
}
