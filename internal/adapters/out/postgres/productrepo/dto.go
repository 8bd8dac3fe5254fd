// Package productrepo provides data transfer objects and mapping functions
// for the slice of the product catalog the order workflow touches: price
// reads, atomic stock decrements, and view counting.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for product rows.
// Prices are stored in kobo minor units.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID `gorm:"type:uuid;index"`
	Name          string    `gorm:"not null"`
	Price         int64     `gorm:"not null"`
	StockQuantity int       `gorm:"not null"`
	ViewCount     int64     `gorm:"not null;default:0"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		SellerID:      aggregate.SellerID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price().Kobo(),
		StockQuantity: aggregate.StockQuantity(),
		ViewCount:     aggregate.ViewCount(),
	}
}

// toDomain converts a database DTO to a product.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromKobo(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, sellerID, dto.Name, price, dto.StockQuantity, dto.ViewCount)
}
