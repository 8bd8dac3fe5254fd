package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the slice of the
// catalog the order workflow touches: reads for pricing, stock decrements,
// and view counting.
type ProductRepository interface {
	// Add persists a new product. Catalog management is an external
	// concern; this exists for composition and tests.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers.
	// Missing identifiers are simply absent from the result; callers
	// decide whether that is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// DecrementStock atomically subtracts the ordered quantity from the
	// product's stock, floored at zero. The clamp happens in the store in
	// a single conditional update so the counter never goes negative even
	// under concurrent checkouts.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementViewCount atomically bumps the product's view counter.
	IncrementViewCount(ctx context.Context, id kernel.UUID) error
}
