package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem or RestoreOrderItem factory functions.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is an immutable line item inside an Order. It snapshots the
// product's unit price at order-creation time and carries the computed line
// total, so the invariant totalPrice == unitPrice × quantity holds by
// construction and historical orders are unaffected by later price changes.
type OrderItem struct {
	productID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money

	guard kernel.ConstructorGuard
}

// NewOrderItem creates a line item for the given product, quantity, and the
// product's current unit price. The line total is computed, never supplied.
func NewOrderItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (OrderItem, error) {
	if err := productID.Validate(); err != nil {
		return OrderItem{}, err
	}

	totalPrice, err := unitPrice.MultiplyQuantity(quantity)
	if err != nil {
		return OrderItem{}, err
	}

	return OrderItem{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrderItem reconstructs a line item from persistence. The persisted
// total is checked against unitPrice × quantity to catch corrupted rows.
func RestoreOrderItem(
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
) (OrderItem, error) {
	item, err := NewOrderItem(productID, quantity, unitPrice)
	if err != nil {
		return OrderItem{}, err
	}

	if !item.totalPrice.IsEqual(totalPrice) {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause(
			"order item total is invalid",
			fmt.Errorf("persisted total %s does not equal %s × %d", totalPrice, unitPrice, quantity),
		)
	}

	return item, nil
}

// ProductID returns the ordered product's identifier.
func (i OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshot taken at order creation.
func (i OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the line total (unit price × quantity).
func (i OrderItem) TotalPrice() kernel.Money {
	return i.totalPrice
}

// Validate ensures the OrderItem was created through a factory function.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}
