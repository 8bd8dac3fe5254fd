package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
	ErrSessionIsNotBuyer         = errors.New("checkout requires a buyer session")
)

// CheckoutCommand represents a buyer's request to convert their cart into
// orders. Carries the explicit session, the required shipping address, and
// an optional free-text note applied to every created order.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	session         kernel.Session
	shippingAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command for an authenticated buyer.
// Validates that the session is a valid buyer session and the shipping
// address is not empty. The cart-non-empty precondition is checked by the
// handler, which owns the cart read.
func NewCheckoutCommand(session kernel.Session, shippingAddress, notes string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Session returns the buyer session placing the order.
func (c CheckoutCommand) Session() kernel.Session {
	return c.session
}

// ShippingAddress returns the delivery address for all created orders.
func (c CheckoutCommand) ShippingAddress() string {
	return c.shippingAddress
}

// Notes returns the buyer's optional note.
func (c CheckoutCommand) Notes() string {
	return c.notes
}

func (c *CheckoutCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}

func (c *CheckoutCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return ErrShippingAddressIsRequired
	}
	c.shippingAddress = shippingAddress
	return nil
}
