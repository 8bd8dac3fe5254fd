// Package product contains the catalog entity as the order workflow sees
// it: current price, stock level, and view counter. Catalog management
// itself (creation, editing, search) happens outside the workflow engine.
package product

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductNameIsRequired is returned when the product name is empty.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product is a seller's catalog entry. The workflow reads its current price
// when computing order totals and mutates only its stock quantity and view
// counter.
//
// Stock follows the stock-floor rule: decrements are clamped at zero, so
// stockQuantity never goes negative even when the ordered quantity exceeds
// the available stock.
type Product struct {
	id            kernel.UUID
	sellerID      kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int
	viewCount     int64

	guard kernel.ConstructorGuard
}

// NewProduct creates a product with an initial stock level.
func NewProduct(id, sellerID kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Product, error) {
	p := &Product{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.setName(name),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	p.price = price
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id, sellerID kernel.UUID,
	name string,
	price kernel.Money,
	stockQuantity int,
	viewCount int64,
) (*Product, error) {
	p, err := NewProduct(id, sellerID, name, price, stockQuantity)
	if err != nil {
		return nil, err
	}
	p.viewCount = viewCount
	return p, nil
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SellerID returns the owning seller's identifier.
func (p *Product) SellerID() kernel.UUID {
	return p.sellerID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// StockQuantity returns the available stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// ViewCount returns how many times the product has been viewed.
func (p *Product) ViewCount() int64 {
	return p.viewCount
}

// DecrementStock reduces the stock by the ordered quantity, floored at
// zero. Returns the quantity actually subtracted, which is less than the
// requested quantity when the order oversells the remaining stock.
func (p *Product) DecrementStock(quantity int) (int, error) {
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	applied := quantity
	if applied > p.stockQuantity {
		applied = p.stockQuantity
	}
	p.stockQuantity -= applied
	return applied, nil
}

// RecordView increments the product's view counter.
func (p *Product) RecordView() {
	p.viewCount++
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	p.sellerID = sellerID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock quantity is invalid",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}
	p.stockQuantity = stockQuantity
	return nil
}
