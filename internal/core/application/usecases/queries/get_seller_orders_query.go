package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves the calling seller's incoming orders,
// newest first, optionally filtered by status.
type GetSellerOrdersQuery struct { //nolint:recvcheck //using for validation
	session      kernel.Session
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a query for the seller's incoming orders.
// Pass order.Unknown as statusFilter to list orders in every status.
func NewGetSellerOrdersQuery(session kernel.Session, statusFilter order.Status) (GetSellerOrdersQuery, error) {
	q := GetSellerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setSession(session),
		q.setStatusFilter(statusFilter),
	); err != nil {
		return GetSellerOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// Session returns the seller session whose orders are being read.
func (q GetSellerOrdersQuery) Session() kernel.Session {
	return q.session
}

// StatusFilter returns the requested status filter, order.Unknown for none.
func (q GetSellerOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// HasStatusFilter reports whether the listing is filtered by status.
func (q GetSellerOrdersQuery) HasStatusFilter() bool {
	return q.statusFilter != order.Unknown
}

func (q *GetSellerOrdersQuery) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsSeller() {
		return ErrSessionIsNotSeller
	}
	q.session = session
	return nil
}

func (q *GetSellerOrdersQuery) setStatusFilter(statusFilter order.Status) error {
	if statusFilter == order.Unknown {
		return nil
	}
	if err := statusFilter.Validate(); err != nil {
		return err
	}
	q.statusFilter = statusFilter
	return nil
}
