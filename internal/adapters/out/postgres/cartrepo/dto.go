// Package cartrepo provides data transfer objects and mapping functions for
// cart item persistence. One row per (buyer, product) pair; merge semantics
// live in the application layer.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one cart row. The (buyer_id, product_id) pair is
// unique so a buyer can never hold two rows for the same product.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_buyer_product"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_buyer_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart item to its database representation.
func fromDomain(item *cart.Item) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID().Bytes(),
		BuyerID:   item.BuyerID().Bytes(),
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
	}
}

// toDomain converts a database DTO to a cart item.
func toDomain(dto CartItemDTO) (*cart.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(id, buyerID, productID, dto.Quantity)
}
