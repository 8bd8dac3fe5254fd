package commands

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// PartialCheckoutError reports a checkout that failed after at least one
// seller group had already committed its order, stock decrements, and
// cart-row deletions.
//
// Committed groups are not rolled back and their cart rows are gone; the
// failed group and every group after it keep their cart rows. Callers can
// show the buyer which orders exist and retry checkout for the remainder
// of the cart.
type PartialCheckoutError struct {
	// CreatedOrders are the orders that committed before the failure.
	CreatedOrders []*order.Order

	// FailedSellerID is the seller group whose commit failed.
	FailedSellerID kernel.UUID

	// Err is the underlying failure.
	Err error
}

func (e *PartialCheckoutError) Error() string {
	return fmt.Sprintf(
		"checkout partially failed: %d order(s) committed, seller %s failed: %v",
		len(e.CreatedOrders), e.FailedSellerID, e.Err,
	)
}

func (e *PartialCheckoutError) Unwrap() error {
	return e.Err
}
