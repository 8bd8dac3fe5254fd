package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberIsRequired is returned when the human-readable order
	// number is empty.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")

	// ErrShippingAddressIsRequired is returned when the shipping address is empty.
	ErrShippingAddressIsRequired = errs.NewValueIsRequiredError("shipping address")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order represents a buyer's purchase from exactly one seller. It is the
// aggregate root produced by checkout: one Order per distinct seller present
// in the cart, never mixing items from two sellers.
//
// Order follows these invariants:
//   - Carries a unique id and a unique human-readable order number
//   - Belongs to exactly one buyer and exactly one seller
//   - Contains at least one line item, each for a distinct product
//   - totalAmount always equals the sum of its line-item totals
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable order number used for display/reference
	number string

	// buyerID identifies the buyer who placed the order
	buyerID kernel.UUID

	// sellerID identifies the single seller fulfilling the order
	sellerID kernel.UUID

	// totalAmount is the sum of all line-item totals
	totalAmount kernel.Money

	// status is the current state in the fulfilment lifecycle
	status Status

	// shippingAddress is where the order is delivered
	shippingAddress string

	// notes is the buyer's optional free-text note
	notes string

	// items are the immutable line items with price snapshots
	items []OrderItem

	// createdAt records when the order was placed
	createdAt time.Time

	// guard ensures the order was created via a factory function
	guard kernel.ConstructorGuard
}

// NewOrder creates a pending Order for one seller group of a checkout.
// The total amount is computed from the line items; it is never supplied.
//
// Validation rules:
//   - id, buyerID, and sellerID must be valid UUIDs
//   - number and shippingAddress must be non-empty
//   - items must be non-empty, valid, and contain no duplicate products
func NewOrder(
	id kernel.UUID,
	number string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	shippingAddress string,
	notes string,
	items []OrderItem,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	o.createdAt = time.Now().UTC()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and creation time. The persisted total is checked against the sum of the
// line-item totals to catch corrupted rows.
func RestoreOrder(
	id kernel.UUID,
	number string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	totalAmount kernel.Money,
	status Status,
	shippingAddress string,
	notes string,
	items []OrderItem,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, buyerID, sellerID, shippingAddress, notes, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if !o.totalAmount.IsEqual(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order total is invalid",
			fmt.Errorf("persisted total %s does not equal item sum %s", totalAmount, o.totalAmount),
		)
	}

	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// TotalAmount returns the sum of all line-item totals.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Notes returns the buyer's optional note.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order to the target status.
//
// A transition to the current status is an idempotent no-op: it succeeds
// and reports changed == false so callers can skip the store write. Invalid
// transitions (skipping a stage, moving backward, leaving a terminal state)
// fail with a ValueIsInvalidError and leave the order untouched.
func (o *Order) TransitionTo(target Status) (changed bool, err error) {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	o.status = newStatus
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}
	o.number = number
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	if address == "" {
		return ErrShippingAddressIsRequired
	}
	o.shippingAddress = address
	return nil
}

// setItems validates the line items, rejects duplicate products, and
// computes the order total as the sum of line totals.
func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	seen := make(map[kernel.UUID]bool, len(items))
	total := kernel.Money{}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if seen[item.ProductID()] {
			return errs.NewValueIsInvalidErrorWithCause(
				"order items are invalid",
				fmt.Errorf("product %s appears more than once", item.ProductID()),
			)
		}
		seen[item.ProductID()] = true
		total = total.Add(item.TotalPrice())
	}

	o.items = make([]OrderItem, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}
