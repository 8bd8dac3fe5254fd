// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates.
package services

import (
	"sort"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"marketplace/internal/pkg/errs"
)

// ErrNoCartLines is returned when a checkout is planned over an empty cart.
var ErrNoCartLines = errs.NewValueIsRequiredError("cart lines")

// CartLine is one cart item resolved against the catalog at checkout time:
// the product's seller and its current unit price, read when checkout runs
// rather than when the item was added to the cart.
type CartLine struct {
	ProductID kernel.UUID
	SellerID  kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
}

// OrderDraft is the plan for one seller's order: the line items for every
// cart entry belonging to that seller, and their summed total. Each draft
// is materialized as exactly one Order by the checkout workflow.
type OrderDraft struct {
	SellerID kernel.UUID
	Items    []order.OrderItem
	Total    kernel.Money
}

// CheckoutPlanner is a domain service that partitions a buyer's cart into
// per-seller order drafts.
//
// Key responsibilities:
//   - Merging duplicate product lines by summing quantities
//   - Grouping lines by seller into disjoint drafts
//   - Computing line totals and per-draft totals from current unit prices
//
// The partition is a grouping, not a sort: item order within a draft is
// irrelevant. Drafts are returned in ascending seller-ID order so that the
// workflow processes seller groups deterministically.
type CheckoutPlanner struct{}

// NewCheckoutPlanner creates a new CheckoutPlanner instance.
func NewCheckoutPlanner() CheckoutPlanner {
	return CheckoutPlanner{}
}

// Plan partitions the resolved cart lines into one OrderDraft per distinct
// seller. For a cart spanning N sellers it always produces exactly N drafts,
// and no draft ever mixes items from two sellers.
//
// Returns ErrNoCartLines for an empty cart; any invalid line (bad IDs,
// non-positive quantity) fails the whole plan.
func (p CheckoutPlanner) Plan(lines []CartLine) ([]OrderDraft, error) {
	if len(lines) == 0 {
		return nil, ErrNoCartLines
	}

	merged, err := mergeLines(lines)
	if err != nil {
		return nil, err
	}

	bySeller := make(map[kernel.UUID][]order.OrderItem)
	for _, line := range merged {
		item, itemErr := order.NewOrderItem(line.ProductID, line.Quantity, line.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		bySeller[line.SellerID] = append(bySeller[line.SellerID], item)
	}

	drafts := make([]OrderDraft, 0, len(bySeller))
	for sellerID, items := range bySeller {
		total := kernel.Money{}
		for _, item := range items {
			total = total.Add(item.TotalPrice())
		}
		drafts = append(drafts, OrderDraft{
			SellerID: sellerID,
			Items:    items,
			Total:    total,
		})
	}

	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].SellerID.String() < drafts[j].SellerID.String()
	})

	return drafts, nil
}

// mergeLines collapses duplicate product lines into one line per product,
// summing quantities. The catalog guarantees one seller and one current
// price per product, so duplicates can only differ in quantity.
func mergeLines(lines []CartLine) ([]CartLine, error) {
	index := make(map[kernel.UUID]int, len(lines))
	merged := make([]CartLine, 0, len(lines))

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return nil, err
		}
		if err := line.SellerID.Validate(); err != nil {
			return nil, err
		}

		if at, ok := index[line.ProductID]; ok {
			merged[at].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged, nil
}
