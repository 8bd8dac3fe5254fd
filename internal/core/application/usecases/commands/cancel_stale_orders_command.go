package commands

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents the housekeeping sweep that cancels
// pending orders older than the configured age. Issued by the background
// job rather than by a user session.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel pending orders
// that have been sitting unconfirmed for longer than maxAge.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsOutOfRangeError(
			"maxAge", maxAge, time.Nanosecond, time.Duration(1<<62),
		)
	}

	return CancelStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how old a pending order must be before it is cancelled.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

// String implements fmt.Stringer for log output.
func (c CancelStaleOrdersCommand) String() string {
	return fmt.Sprintf("cancel pending orders older than %s", c.maxAge)
}
