package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	ItemID      string `json:"item_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SellerID    string `json:"seller_id"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price_kobo"`
	LineTotal   int64  `json:"line_total_kobo"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total int64              `json:"total_kobo"`
}

// GetCart handles GET /api/v1/cart - retrieves the buyer's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(session)
	if err != nil {
		return writeError(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := cartResponse{
		Items: make([]cartItemResponse, 0, len(cart.Items)),
		Total: cart.Total.Kobo(),
	}
	for _, item := range cart.Items {
		response.Items = append(response.Items, cartItemResponse{
			ItemID:      item.ItemID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			SellerID:    item.SellerID.String(),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Kobo(),
			LineTotal:   item.LineTotal.Kobo(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items - adds a product to the cart,
// merging quantities when the product is already present.
func (s *Server) AddCartItem(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req addCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(session, productID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:itemId - replaces the
// item's quantity. A quantity of zero or less removes the item.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateCartItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCartItemCommand(session, itemID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(session, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart - removes every item from the
// buyer's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(session)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
