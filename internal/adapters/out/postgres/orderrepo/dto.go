// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by buyer, seller, and status.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number          string         `gorm:"uniqueIndex;not null"`
	BuyerID         uuid.UUID      `gorm:"type:uuid;index"`
	SellerID        uuid.UUID      `gorm:"type:uuid;index"`
	Status          string         `gorm:"index;not null"`
	TotalAmount     int64          `gorm:"not null"`
	ShippingAddress string         `gorm:"not null"`
	Notes           string         ``
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time      `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line item row. Line items carry the
// unit-price snapshot taken at checkout and the computed line total.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"`
	TotalPrice int64     `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Amounts are stored in kobo minor units, the status as its string name.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Kobo(),
			TotalPrice: item.TotalPrice().Kobo(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		BuyerID:         aggregate.BuyerID().Bytes(),
		SellerID:        aggregate.SellerID().Bytes(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Kobo(),
		ShippingAddress: aggregate.ShippingAddress(),
		Notes:           aggregate.Notes(),
		Items:           items,
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder,
// which re-checks the stored totals against the line-item sums.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoneyFromKobo(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		buyerID,
		sellerID,
		totalAmount,
		status,
		dto.ShippingAddress,
		dto.Notes,
		items,
		dto.CreatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	unitPrice, err := kernel.NewMoneyFromKobo(dto.UnitPrice)
	if err != nil {
		return order.OrderItem{}, err
	}

	totalPrice, err := kernel.NewMoneyFromKobo(dto.TotalPrice)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.RestoreOrderItem(productID, dto.Quantity, unitPrice, totalPrice)
}
