package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves the buyer's cart directly from the database.
// Joins cart rows with products so the response carries current names and
// prices without loading aggregates.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart read. Returns the buyer's cart lines sorted by
// creation time, with per-line and cart-wide totals computed from the
// current product prices.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.product_id,
			p.name,
			p.seller_id,
			ci.quantity,
			p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.buyer_id = ?
		ORDER BY ci.created_at
	`, query.Session().UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	total := kernel.ZeroMoney()

	for rows.Next() {
		var itemID, productID, sellerID uuid.UUID
		var name string
		var quantity int
		var priceKobo int64

		err = rows.Scan(
			&itemID,
			&productID,
			&name,
			&sellerID,
			&quantity,
			&priceKobo,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item, itemErr := buildCartItemResponse(itemID, productID, sellerID, name, quantity, priceKobo)
		if itemErr != nil {
			return GetCartQueryResponse{}, itemErr
		}

		total = total.Add(item.LineTotal)
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.Total = total
	return response, nil
}

func buildCartItemResponse(
	itemID, productID, sellerID uuid.UUID,
	name string,
	quantity int,
	priceKobo int64,
) (CartItemResponse, error) {
	id, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return CartItemResponse{}, err
	}

	prodID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return CartItemResponse{}, err
	}

	selID, err := kernel.UUIDFromBytes(sellerID[:])
	if err != nil {
		return CartItemResponse{}, err
	}

	unitPrice, err := kernel.NewMoneyFromKobo(priceKobo)
	if err != nil {
		return CartItemResponse{}, err
	}

	lineTotal, err := unitPrice.MultiplyQuantity(quantity)
	if err != nil {
		return CartItemResponse{}, err
	}

	return CartItemResponse{
		ItemID:      id,
		ProductID:   prodID,
		ProductName: name,
		SellerID:    selID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	}, nil
}
