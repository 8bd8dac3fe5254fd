package queries

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler retrieves a buyer's order history from the
// database. Receipts are loaded in a second pass and are best-effort: a
// receipt read failure is logged and the orders are returned without them,
// so a broken side table never blocks the history view.
type GetBuyerOrdersQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order history reads.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB, logger *slog.Logger) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{
		db:     db,
		logger: logger.With("component", "buyer_orders_query"),
	}
}

// Handle executes the query. Orders come back newest first, each with its
// line items and any attached receipts.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := fetchOrders(ctx, h.db, `
		SELECT
			id, number, buyer_id, seller_id, status,
			total_amount, shipping_address, notes, created_at
		FROM orders
		WHERE buyer_id = ?
		ORDER BY created_at DESC
	`, query.Session().UserID().Bytes())
	if err != nil {
		return nil, err
	}

	if err = attachOrderItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	if err = attachReceipts(ctx, h.db, orders); err != nil {
		h.logger.WarnContext(ctx, "failed to load receipts for order history",
			"buyer_id", query.Session().UserID().String(), "error", err)
	}

	return toOrderedResponses(orders), nil
}

// fetchOrders runs an order header query and maps the rows into responses
// keyed by order ID, preserving row order.
func fetchOrders(
	ctx context.Context,
	db *gorm.DB,
	sql string,
	args ...any,
) (*orderResponseSet, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := newOrderResponseSet()

	for rows.Next() {
		resp, scanErr := scanOrderHeader(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		set.add(resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

// attachOrderItems loads line items for every order in the set.
func attachOrderItems(ctx context.Context, db *gorm.DB, set *orderResponseSet) error {
	if set.isEmpty() {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, product_id, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, product_id
	`, set.ids()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		orderID, item, scanErr := scanOrderItem(rows)
		if scanErr != nil {
			return scanErr
		}
		set.addItem(orderID, item)
	}

	return rows.Err()
}

// attachReceipts loads payment receipts for every order in the set.
func attachReceipts(ctx context.Context, db *gorm.DB, set *orderResponseSet) error {
	if set.isEmpty() {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, id, receipt_url, status, notes, created_at
		FROM payment_receipts
		WHERE order_id IN ?
		ORDER BY order_id, created_at
	`, set.ids()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		orderID, rcpt, scanErr := scanReceipt(rows)
		if scanErr != nil {
			return scanErr
		}
		set.addReceipt(orderID, rcpt)
	}

	return rows.Err()
}

func toOrderedResponses(set *orderResponseSet) []OrderResponse {
	result := make([]OrderResponse, 0, len(set.order))
	for _, id := range set.order {
		result = append(result, *set.byID[id])
	}
	return result
}

// orderResponseSet accumulates order responses keyed by ID while keeping
// the original row order for the final listing.
type orderResponseSet struct {
	byID  map[kernel.UUID]*OrderResponse
	order []kernel.UUID
}

func newOrderResponseSet() *orderResponseSet {
	return &orderResponseSet{
		byID:  make(map[kernel.UUID]*OrderResponse),
		order: make([]kernel.UUID, 0),
	}
}

func (s *orderResponseSet) add(resp OrderResponse) {
	s.byID[resp.ID] = &resp
	s.order = append(s.order, resp.ID)
}

func (s *orderResponseSet) addItem(orderID kernel.UUID, item OrderItemResponse) {
	if resp, ok := s.byID[orderID]; ok {
		resp.Items = append(resp.Items, item)
	}
}

func (s *orderResponseSet) addReceipt(orderID kernel.UUID, rcpt ReceiptResponse) {
	if resp, ok := s.byID[orderID]; ok {
		resp.Receipts = append(resp.Receipts, rcpt)
	}
}

func (s *orderResponseSet) isEmpty() bool {
	return len(s.order) == 0
}

func (s *orderResponseSet) ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.order))
	for _, id := range s.order {
		ids = append(ids, id.Bytes())
	}
	return ids
}
