// Package queries contains read-only operations that bypass the domain
// model and query the database directly. Implements the Query side of the
// CQRS architecture: raw SQL projections optimized for reading, with no
// aggregate loading or transaction management.
package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrSessionIsNotBuyer  = errors.New("cart and order history reads require a buyer session")
	ErrSessionIsNotSeller = errors.New("sales reads require a seller session")
)

// GetCartQuery retrieves the calling buyer's cart with product details
// and line totals.
//
// Example:
//
//	query, err := NewGetCartQuery(session)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("Cart total: %s across %d items\n", cart.Total, len(cart.Items))
type GetCartQuery struct { //nolint:recvcheck //using for validation
	session kernel.Session

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the buyer's cart contents.
func NewGetCartQuery(session kernel.Session) (GetCartQuery, error) {
	q := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSession(session); err != nil {
		return GetCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Session returns the buyer session whose cart is being read.
func (q GetCartQuery) Session() kernel.Session {
	return q.session
}

func (q *GetCartQuery) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	q.session = session
	return nil
}

// GetCartQueryResponse represents the buyer's cart: one line per product
// plus the cart-wide total.
type GetCartQueryResponse struct {
	Items []CartItemResponse
	Total kernel.Money
}

// CartItemResponse represents one cart line joined with its product.
type CartItemResponse struct {
	ItemID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	SellerID    kernel.UUID
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}
