package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// Row scanning helpers shared by the buyer and seller order listings. Each
// maps one raw SQL row into the response types, converting stored
// representations (UUID bytes, kobo amounts, status strings) back into
// kernel value objects.

func scanOrderHeader(rows *sql.Rows) (OrderResponse, error) {
	var id, buyerID, sellerID uuid.UUID
	var number, status, shippingAddress, notes string
	var totalKobo int64
	var createdAt time.Time

	err := rows.Scan(
		&id,
		&number,
		&buyerID,
		&sellerID,
		&status,
		&totalKobo,
		&shippingAddress,
		&notes,
		&createdAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	buyer, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	seller, err := kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	total, err := kernel.NewMoneyFromKobo(totalKobo)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:              orderID,
		Number:          number,
		BuyerID:         buyer,
		SellerID:        seller,
		Status:          orderStatus,
		TotalAmount:     total,
		ShippingAddress: shippingAddress,
		Notes:           notes,
		CreatedAt:       createdAt,
		Items:           make([]OrderItemResponse, 0),
		Receipts:        make([]ReceiptResponse, 0),
	}, nil
}

func scanOrderItem(rows *sql.Rows) (kernel.UUID, OrderItemResponse, error) {
	var orderID, productID uuid.UUID
	var quantity int
	var unitKobo, totalKobo int64

	err := rows.Scan(
		&orderID,
		&productID,
		&quantity,
		&unitKobo,
		&totalKobo,
	)
	if err != nil {
		return kernel.UUID{}, OrderItemResponse{}, err
	}

	ordID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, OrderItemResponse{}, err
	}

	prodID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return kernel.UUID{}, OrderItemResponse{}, err
	}

	unitPrice, err := kernel.NewMoneyFromKobo(unitKobo)
	if err != nil {
		return kernel.UUID{}, OrderItemResponse{}, err
	}

	totalPrice, err := kernel.NewMoneyFromKobo(totalKobo)
	if err != nil {
		return kernel.UUID{}, OrderItemResponse{}, err
	}

	return ordID, OrderItemResponse{
		ProductID:  prodID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
	}, nil
}

func scanReceipt(rows *sql.Rows) (kernel.UUID, ReceiptResponse, error) {
	var orderID, id uuid.UUID
	var receiptURL, status, notes string
	var createdAt time.Time

	err := rows.Scan(
		&orderID,
		&id,
		&receiptURL,
		&status,
		&notes,
		&createdAt,
	)
	if err != nil {
		return kernel.UUID{}, ReceiptResponse{}, err
	}

	ordID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, ReceiptResponse{}, err
	}

	receiptID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, ReceiptResponse{}, err
	}

	receiptStatus, err := receipt.StatusFromString(status)
	if err != nil {
		return kernel.UUID{}, ReceiptResponse{}, err
	}

	return ordID, ReceiptResponse{
		ID:         receiptID,
		ReceiptURL: receiptURL,
		Status:     receiptStatus,
		Notes:      notes,
		CreatedAt:  createdAt,
	}, nil
}
