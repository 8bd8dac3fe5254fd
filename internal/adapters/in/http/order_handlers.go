package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price_kobo"`
	TotalPrice int64  `json:"total_price_kobo"`
}

type receiptResponse struct {
	ID         string    `json:"id"`
	ReceiptURL string    `json:"receipt_url"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	BuyerID         string              `json:"buyer_id"`
	SellerID        string              `json:"seller_id"`
	Status          string              `json:"status"`
	TotalAmount     int64               `json:"total_amount_kobo"`
	ShippingAddress string              `json:"shipping_address"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []orderItemResponse `json:"items"`
	Receipts        []receiptResponse   `json:"receipts"`
}

// Checkout handles POST /api/v1/checkout - converts the buyer's cart into
// one pending order per distinct seller.
func (s *Server) Checkout(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req checkoutRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCheckoutCommand(session, req.ShippingAddress, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(created))
	for _, ord := range created {
		response = append(response, orderToResponse(ord))
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetBuyerOrders handles GET /api/v1/orders - the buyer's order history.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(session)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listingToResponse(orders))
}

// GetSellerOrders handles GET /api/v1/sales - the seller's incoming orders,
// optionally filtered by ?status=.
func (s *Server) GetSellerOrders(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	statusFilter := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		statusFilter, err = order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	query, err := queries.NewGetSellerOrdersQuery(session, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listingToResponse(orders))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves an
// order along its fulfilment lifecycle. Repeating the current status is a
// successful no-op.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(session, orderID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderToResponse(ord *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(ord.Items()))
	for _, item := range ord.Items() {
		items = append(items, orderItemResponse{
			ProductID:  item.ProductID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Kobo(),
			TotalPrice: item.TotalPrice().Kobo(),
		})
	}

	return orderResponse{
		ID:              ord.ID().String(),
		Number:          ord.Number(),
		BuyerID:         ord.BuyerID().String(),
		SellerID:        ord.SellerID().String(),
		Status:          ord.Status().String(),
		TotalAmount:     ord.TotalAmount().Kobo(),
		ShippingAddress: ord.ShippingAddress(),
		Notes:           ord.Notes(),
		CreatedAt:       ord.CreatedAt(),
		Items:           items,
		Receipts:        make([]receiptResponse, 0),
	}
}

func listingToResponse(orders []queries.OrderResponse) []orderResponse {
	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]orderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, orderItemResponse{
				ProductID:  item.ProductID.String(),
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice.Kobo(),
				TotalPrice: item.TotalPrice.Kobo(),
			})
		}

		receipts := make([]receiptResponse, 0, len(o.Receipts))
		for _, rcpt := range o.Receipts {
			receipts = append(receipts, receiptResponse{
				ID:         rcpt.ID.String(),
				ReceiptURL: rcpt.ReceiptURL,
				Status:     rcpt.Status.String(),
				Notes:      rcpt.Notes,
				CreatedAt:  rcpt.CreatedAt,
			})
		}

		response = append(response, orderResponse{
			ID:              o.ID.String(),
			Number:          o.Number,
			BuyerID:         o.BuyerID.String(),
			SellerID:        o.SellerID.String(),
			Status:          o.Status.String(),
			TotalAmount:     o.TotalAmount.Kobo(),
			ShippingAddress: o.ShippingAddress,
			Notes:           o.Notes,
			CreatedAt:       o.CreatedAt,
			Items:           items,
			Receipts:        receipts,
		})
	}

	return response
}
