package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart items.
// The store keeps at most one row per (buyer, product) pair; merge
// semantics are decided by the application layer, which reads the
// existing row and either updates or inserts.
type CartRepository interface {
	// Add persists a new cart item.
	Add(ctx context.Context, item *cart.Item) error

	// Update persists a quantity change to an existing cart item.
	Update(ctx context.Context, item *cart.Item) error

	// Get retrieves a cart item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Item, error)

	// GetByBuyer retrieves every cart item belonging to the buyer.
	GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.Item, error)

	// GetByBuyerAndProduct retrieves the buyer's cart item for one product.
	// Returns an ObjectNotFoundError when the product is not in the cart.
	GetByBuyerAndProduct(ctx context.Context, buyerID, productID kernel.UUID) (*cart.Item, error)

	// Remove deletes one cart item by its unique identifier.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveByBuyerAndProducts deletes the buyer's cart items for the given
	// products. Used by checkout to clear exactly one seller group's items
	// inside that group's transaction.
	RemoveByBuyerAndProducts(ctx context.Context, buyerID kernel.UUID, productIDs []kernel.UUID) error

	// ClearByBuyer deletes every cart item belonging to the buyer.
	ClearByBuyer(ctx context.Context, buyerID kernel.UUID) error
}
