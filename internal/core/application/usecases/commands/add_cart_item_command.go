package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a buyer adding a product to their cart.
// Adding a product already present merges into the existing row by summing
// quantities rather than duplicating it.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	session   kernel.Session
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to the buyer's cart.
func NewAddCartItemCommand(session kernel.Session, productID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Session returns the buyer session adding the product.
func (c AddCartItemCommand) Session() kernel.Session {
	return c.session
}

// ProductID returns the product being added.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the quantity being added.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
