package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a buyer removing one item from their cart.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	session    kernel.Session
	cartItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart item.
func NewRemoveCartItemCommand(session kernel.Session, cartItemID kernel.UUID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setCartItemID(cartItemID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// Session returns the buyer session removing the item.
func (c RemoveCartItemCommand) Session() kernel.Session {
	return c.session
}

// CartItemID returns the cart item being removed.
func (c RemoveCartItemCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

func (c *RemoveCartItemCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}

func (c *RemoveCartItemCommand) setCartItemID(cartItemID kernel.UUID) error {
	if err := cartItemID.Validate(); err != nil {
		return err
	}
	c.cartItemID = cartItemID
	return nil
}
