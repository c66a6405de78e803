package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrExpireQuotationsCommandIsNotConstructed = errors.New(
	"ExpireQuotationsCommand must be created via NewExpireQuotationsCommand constructor",
)

// ExpireQuotationsCommand triggers expiry of all quotations past their
// validity window. Run periodically by the scheduler; the aggregate also
// checks expiry lazily so a late job never lets a stale quotation through.
type ExpireQuotationsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuotationsCommand creates a parameterless batch expiry command.
func NewExpireQuotationsCommand() ExpireQuotationsCommand {
	return ExpireQuotationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireQuotationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotationsCommandIsNotConstructed)
}
