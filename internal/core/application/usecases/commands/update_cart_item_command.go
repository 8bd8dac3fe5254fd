package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand represents a buyer changing a cart item's quantity.
// A quantity of zero or less is defined to be equivalent to removing the
// item, so any quantity is accepted here; the handler decides between a
// quantity write and a removal.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	session    kernel.Session
	cartItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to change a cart item's quantity.
func NewUpdateCartItemCommand(
	session kernel.Session,
	cartItemID kernel.UUID,
	quantity int,
) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setCartItemID(cartItemID),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	cmd.quantity = quantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// Session returns the buyer session updating the item.
func (c UpdateCartItemCommand) Session() kernel.Session {
	return c.session
}

// CartItemID returns the cart item being updated.
func (c UpdateCartItemCommand) CartItemID() kernel.UUID {
	return c.cartItemID
}

// Quantity returns the requested quantity; zero or less means removal.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}

func (c *UpdateCartItemCommand) setCartItemID(cartItemID kernel.UUID) error {
	if err := cartItemID.Validate(); err != nil {
		return err
	}
	c.cartItemID = cartItemID
	return nil
}
