package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrExpireVendorRequestsCommandIsNotConstructed = errors.New(
	"ExpireVendorRequestsCommand must be created via NewExpireVendorRequestsCommand constructor",
)

// ExpireVendorRequestsCommand triggers expiry of vendor enquiry requests
// past their validity window. Run periodically by the scheduler.
type ExpireVendorRequestsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireVendorRequestsCommand creates a parameterless batch expiry
// command.
func NewExpireVendorRequestsCommand() ExpireVendorRequestsCommand {
	return ExpireVendorRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireVendorRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireVendorRequestsCommandIsNotConstructed)
}
