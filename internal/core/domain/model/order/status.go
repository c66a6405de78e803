package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created -> Confirmed -> DriverAssigned -> Pickup -> PickedUp
//	  -> InTransit -> Delivered -> Completed
//
// Cancelled is reachable from Created, Confirmed, DriverAssigned and
// Pickup. Completed and Cancelled are final.
//
// Each transition is additionally gated by the actor's role, see
// AllowedForRole.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusCreated is the initial status of an order converted from an
	// accepted quotation.
	StatusCreated

	// StatusConfirmed indicates the vendor (or a manager) confirmed the
	// order, typically after payment.
	StatusConfirmed

	// StatusDriverAssigned indicates a driver has been assigned.
	StatusDriverAssigned

	// StatusPickup indicates the driver is en route to the pickup point.
	StatusPickup

	// StatusPickedUp indicates the cargo is on board.
	StatusPickedUp

	// StatusInTransit indicates the trip is under way.
	StatusInTransit

	// StatusDelivered indicates the cargo reached the destination and awaits
	// OTP confirmation by the customer.
	StatusDelivered

	// StatusCompleted indicates the customer confirmed delivery. Final.
	StatusCompleted

	// StatusCancelled indicates the order was cancelled. Final.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusCreated:        "created",
		StatusConfirmed:      "confirmed",
		StatusDriverAssigned: "driver_assigned",
		StatusPickup:         "pickup",
		StatusPickedUp:       "picked_up",
		StatusInTransit:      "in_transit",
		StatusDelivered:      "delivered",
		StatusCompleted:      "completed",
		StatusCancelled:      "cancelled",
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
		"status", fmt.Errorf("%q is not a valid order status", s))
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
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// getTransitions returns the allowed successor statuses for each status.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusCreated:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusDriverAssigned, StatusCancelled},
		StatusDriverAssigned: {StatusPickup, StatusCancelled},
		StatusPickup:         {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusInTransit},
		StatusInTransit:      {StatusDelivered},
		StatusDelivered:      {StatusCompleted},
	}
}

// getRolePermissions returns the statuses each role may move an order into.
// Admin is handled separately and may perform any valid transition.
func getRolePermissions() map[Role][]Status {
	return map[Role][]Status{
		RoleCustomer: {StatusCancelled},
		RoleVendor: {StatusConfirmed, StatusDriverAssigned, StatusPickup,
			StatusPickedUp, StatusInTransit, StatusDelivered, StatusCancelled},
		RoleDriver:  {StatusPickup, StatusPickedUp, StatusInTransit, StatusDelivered},
		RoleManager: {StatusConfirmed, StatusCancelled},
	}
}

// CanTransitionTo reports whether the target status is a valid successor.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedForRole reports whether the given role may move an order into this
// status.
func (s Status) AllowedForRole(role Role) bool {
	if role == RoleAdmin {
		return true
	}
	for _, allowed := range getRolePermissions()[role] {
		if allowed == s {
			return true
		}
	}
	return false
}

// Transition validates and performs a transition to the target status on
// behalf of the given role.
//
// Returns:
//   - (target, nil) when the transition is valid and permitted
//   - (0, error) when the transition is invalid for the current status or
//     the role lacks permission
func (s Status) Transition(target Status, role Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot transition order from %s to %s", s, target))
	}
	if !target.AllowedForRole(role) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("role %s may not move an order to %s", role, target))
	}
	return target, nil
}
