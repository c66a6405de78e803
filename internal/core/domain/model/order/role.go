package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Role identifies the kind of user acting on an order. Which status
// transitions a role may perform is defined by Status.AllowedForRole.
type Role int

const (
	// RoleUnknown represents an invalid role value.
	RoleUnknown Role = iota

	// RoleCustomer is the paying customer on the order.
	RoleCustomer

	// RoleVendor is the vendor fulfilling the order.
	RoleVendor

	// RoleDriver is the driver executing the trip.
	RoleDriver

	// RoleManager is an operations manager.
	RoleManager

	// RoleAdmin is a platform administrator with unrestricted transitions.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleDriver:   "driver",
		RoleManager:  "manager",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role string as carried in the X-User-Role header.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the lower-case name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
