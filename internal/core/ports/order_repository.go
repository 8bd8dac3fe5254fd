// Package ports defines the contracts between the application layer and
// infrastructure: repositories, the unit of work, order-number generation,
// and event publishing. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order aggregate.
	// Line items and totals are immutable after creation and are never
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStalePending retrieves orders still in pending status that were
	// created before the given cutoff. Used by the stale-order
	// cancellation job.
	GetStalePending(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
