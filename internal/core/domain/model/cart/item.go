// Package cart contains the buyer's ephemeral cart: one Item per
// (buyer, product) pair, deleted after successful checkout.
package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem or RestoreItem factory functions.
	ErrItemIsNotConstructed = errors.New("cart Item must be created via NewItem constructor")
)

// Item is a buyer's selection of one product with a quantity. A buyer's
// cart holds at most one Item per product: adding an already-present
// product merges into the existing row by summing quantities instead of
// duplicating it.
//
// Items are ephemeral. They are deleted when the buyer removes them, when
// a quantity update reaches zero, or when checkout commits the seller group
// the product belongs to.
type Item struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard kernel.ConstructorGuard
}

// NewItem creates a cart item for a buyer and product with a positive quantity.
func NewItem(id, buyerID, productID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setBuyerID(buyerID),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a cart item from persistence.
func RestoreItem(id, buyerID, productID kernel.UUID, quantity int) (*Item, error) {
	return NewItem(id, buyerID, productID, quantity)
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the cart item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// BuyerID returns the owning buyer's identifier.
func (i *Item) BuyerID() kernel.UUID {
	return i.buyerID
}

// ProductID returns the selected product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the selected quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Merge adds a further selection of the same product to this item,
// summing quantities. Used when a buyer adds a product already in the cart.
func (i *Item) Merge(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity += quantity
	return nil
}

// ChangeQuantity replaces the item's quantity. Zero and negative values are
// rejected here; callers treat them as a removal of the item instead.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	i.buyerID = buyerID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
