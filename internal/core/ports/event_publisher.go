package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle changes to interested
// downstream consumers (notifications, analytics).
//
// Publishing is a side channel: it runs after the store commit, and
// failures are logged by callers without failing the primary operation.
type OrderEventPublisher interface {
	// OrderCreated announces a newly committed order.
	OrderCreated(ctx context.Context, aggregate *order.Order) error

	// OrderStatusChanged announces a committed status transition.
	OrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) error
}
