package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for payment receipts.
type ReceiptRepository interface {
	// Add persists a new receipt.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists a review (verify/reject) of an existing receipt.
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get retrieves a receipt by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error)

	// GetByOrder retrieves all receipts attached to an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*receipt.Receipt, error)
}
