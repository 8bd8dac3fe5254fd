package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a buyer emptying their whole cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	session kernel.Session

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the buyer's cart.
func NewClearCartCommand(session kernel.Session) (ClearCartCommand, error) {
	cmd := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSession(session); err != nil {
		return ClearCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// Session returns the buyer session clearing the cart.
func (c ClearCartCommand) Session() kernel.Session {
	return c.session
}

func (c *ClearCartCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}
