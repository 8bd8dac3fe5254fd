// Package http exposes the order workflow over an echo HTTP API.
//
// Authentication happens upstream (gateway / BaaS); handlers read the
// already-authenticated principal from the X-User-Id and X-User-Role
// headers and turn it into a kernel.Session.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	addCartItemHandler       commands.AddCartItemCommandHandler
	updateCartItemHandler    commands.UpdateCartItemCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	attachReceiptHandler     commands.AttachReceiptCommandHandler
	reviewReceiptHandler     commands.ReviewReceiptCommandHandler

	// Query handlers
	getCartHandler         queries.GetCartQueryHandler
	getBuyerOrdersHandler  queries.GetBuyerOrdersQueryHandler
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	attachReceiptHandler commands.AttachReceiptCommandHandler,
	reviewReceiptHandler commands.ReviewReceiptCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		addCartItemHandler:       addCartItemHandler,
		updateCartItemHandler:    updateCartItemHandler,
		removeCartItemHandler:    removeCartItemHandler,
		clearCartHandler:         clearCartHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		attachReceiptHandler:     attachReceiptHandler,
		reviewReceiptHandler:     reviewReceiptHandler,
		getCartHandler:           getCartHandler,
		getBuyerOrdersHandler:    getBuyerOrdersHandler,
		getSellerOrdersHandler:   getSellerOrdersHandler,
	}
}

// RegisterRoutes attaches every workflow endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/checkout", s.Checkout)

	api.GET("/orders", s.GetBuyerOrders)
	api.GET("/sales", s.GetSellerOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)

	api.POST("/orders/:orderId/receipts", s.AttachReceipt)
	api.PATCH("/receipts/:receiptId", s.ReviewReceipt)
}

// errorResponse is the uniform error body for every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sessionFromHeaders builds the caller's session from the identity headers.
func sessionFromHeaders(ctx echo.Context) (kernel.Session, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Session{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Session{}, err
	}

	return kernel.NewSession(userID, role)
}

// writeError maps domain and application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var partial *commands.PartialCheckoutError
	if errors.As(err, &partial) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: partial.Error(),
		})
	}

	status := http.StatusBadRequest
	if errors.Is(err, errs.ErrObjectNotFound) {
		status = http.StatusNotFound
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
