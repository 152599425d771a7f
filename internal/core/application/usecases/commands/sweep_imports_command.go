package commands

import (
	"errors"

	"transport/internal/pkg/guard"
)

var ErrSweepImportsCommandIsNotConstructed = errors.New(
	"SweepImportsCommand must be created via NewSweepImportsCommand constructor",
)

// SweepImportsCommand triggers one sweep over open, long-overdue import
// records, creating a transport order for each. Deduplication is fully
// delegated to the order creation endpoint's file-number check.
type SweepImportsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepImportsCommand creates the parameterless sweep command.
func NewSweepImportsCommand() SweepImportsCommand {
	return SweepImportsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepImportsCommand) Validate() error {
	return c.guard.Validate(ErrSweepImportsCommandIsNotConstructed)
}
