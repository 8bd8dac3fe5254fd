package queries

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler retrieves a seller's incoming orders from the
// database. Like the buyer listing, receipts ride along best-effort so the
// seller can review payment proof from the same view.
type GetSellerOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order reads.
func NewGetSellerOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{
		db:     db,
		logger: logger.With("component", "seller_orders_query"),
	}
}

// Handle executes the query. Orders come back newest first, each with its
// line items and any attached receipts, optionally filtered by status.
func (h GetSellerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSellerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id, number, buyer_id, seller_id, status,
			total_amount, shipping_address, notes, created_at
		FROM orders
		WHERE seller_id = ?
	`
	args := []any{query.Session().UserID().Bytes()}

	if query.HasStatusFilter() {
		sql += " AND status = ?"
		args = append(args, query.StatusFilter().String())
	}
	sql += " ORDER BY created_at DESC"

	orders, err := fetchOrders(ctx, h.db, sql, args...)
	if err != nil {
		return nil, err
	}

	if err = attachOrderItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	if err = attachReceipts(ctx, h.db, orders); err != nil {
		h.logger.WarnContext(ctx, "failed to load receipts for seller orders",
			"seller_id", query.Session().UserID().String(), "error", err)
	}

	return toOrderedResponses(orders), nil
}
