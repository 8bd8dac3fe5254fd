package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves the calling buyer's order history, newest
// first, with line items and any attached payment receipts.
type GetBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	session kernel.Session

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the buyer's order history.
func NewGetBuyerOrdersQuery(session kernel.Session) (GetBuyerOrdersQuery, error) {
	q := GetBuyerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setSession(session); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// Session returns the buyer session whose orders are being read.
func (q GetBuyerOrdersQuery) Session() kernel.Session {
	return q.session
}

func (q *GetBuyerOrdersQuery) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	q.session = session
	return nil
}

// OrderResponse represents one order in a listing: header fields, line
// items, and attached receipts. Shared by the buyer and seller listings.
type OrderResponse struct {
	ID              kernel.UUID
	Number          string
	BuyerID         kernel.UUID
	SellerID        kernel.UUID
	Status          order.Status
	TotalAmount     kernel.Money
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
	Items           []OrderItemResponse
	Receipts        []ReceiptResponse
}

// OrderItemResponse represents one line item on an order.
type OrderItemResponse struct {
	ProductID  kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	TotalPrice kernel.Money
}

// ReceiptResponse represents a payment receipt attached to an order.
type ReceiptResponse struct {
	ID         kernel.UUID
	ReceiptURL string
	Status     receipt.Status
	Notes      string
	CreatedAt  time.Time
}
