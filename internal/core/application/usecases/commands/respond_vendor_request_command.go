package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRespondVendorRequestCommandIsNotConstructed = errors.New(
	"RespondVendorRequestCommand must be created via NewRespondVendorRequestCommand constructor",
)

// VendorResponseAction is what a vendor does with an enquiry request.
type VendorResponseAction int

const (
	// VendorResponseUnknown represents an invalid action.
	VendorResponseUnknown VendorResponseAction = iota

	// VendorResponseAccept takes the manager's suggested price as is.
	VendorResponseAccept

	// VendorResponseCounter proposes a different price.
	VendorResponseCounter

	// VendorResponseReject declines the request.
	VendorResponseReject
)

// VendorResponseActionFromString parses an action from its wire form.
func VendorResponseActionFromString(s string) (VendorResponseAction, error) {
	switch s {
	case "accept":
		return VendorResponseAccept, nil
	case "counter":
		return VendorResponseCounter, nil
	case "reject":
		return VendorResponseReject, nil
	default:
		return VendorResponseUnknown, errs.NewValueIsInvalidError("action")
	}
}

// RespondVendorRequestCommand represents a vendor's response to an enquiry
// request: accept the suggested price, counter with another, or reject.
type RespondVendorRequestCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	vendorID     kernel.UUID
	action       VendorResponseAction
	counterPrice *kernel.Money

	guard guard.ConstructorGuard
}

// NewRespondVendorRequestCommand creates a command to respond to an enquiry
// request. A counter requires a price; accept and reject forbid one.
func NewRespondVendorRequestCommand(
	requestID kernel.UUID,
	vendorID kernel.UUID,
	action VendorResponseAction,
	counterPrice *kernel.Money,
) (RespondVendorRequestCommand, error) {
	cmd := RespondVendorRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setVendorID(vendorID),
		cmd.setAction(action, counterPrice),
	); err != nil {
		return RespondVendorRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondVendorRequestCommand) Validate() error {
	return c.guard.Validate(ErrRespondVendorRequestCommandIsNotConstructed)
}

// RequestID returns the vendor request identifier.
func (c RespondVendorRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// VendorID returns the acting vendor's identifier.
func (c RespondVendorRequestCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Action returns the vendor's chosen action.
func (c RespondVendorRequestCommand) Action() VendorResponseAction {
	return c.action
}

// CounterPrice returns the counter price, set only for counter responses.
func (c RespondVendorRequestCommand) CounterPrice() *kernel.Money {
	return c.counterPrice
}

func (c *RespondVendorRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RespondVendorRequestCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *RespondVendorRequestCommand) setAction(action VendorResponseAction, counterPrice *kernel.Money) error {
	switch action {
	case VendorResponseCounter:
		if counterPrice == nil || counterPrice.IsZero() {
			return errs.NewValueIsRequiredError("counterPrice")
		}
	case VendorResponseAccept, VendorResponseReject:
		if counterPrice != nil {
			return errs.NewValueIsInvalidError("counterPrice")
		}
	case VendorResponseUnknown:
		return errs.NewValueIsInvalidError("action")
	default:
		return errs.NewValueIsInvalidError("action")
	}

	c.action = action
	c.counterPrice = counterPrice
	return nil
}
