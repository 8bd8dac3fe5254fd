package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"

	"github.com/labstack/echo/v4"
)

type attachReceiptRequest struct {
	ReceiptURL string `json:"receipt_url"`
}

type reviewReceiptRequest struct {
	Verdict string `json:"verdict"`
	Notes   string `json:"notes"`
}

// AttachReceipt handles POST /api/v1/orders/:orderId/receipts - a buyer
// attaches proof of off-platform payment to one of their orders. The asset
// is uploaded elsewhere; only its URL is recorded here.
func (s *Server) AttachReceipt(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req attachReceiptRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAttachReceiptCommand(session, orderID, req.ReceiptURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReviewReceipt handles PATCH /api/v1/receipts/:receiptId - the order's
// seller verifies or rejects a pending receipt.
func (s *Server) ReviewReceipt(ctx echo.Context) error {
	session, err := sessionFromHeaders(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	receiptID, err := kernel.UUIDFromString(ctx.Param("receiptId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req reviewReceiptRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	verdict, err := receipt.StatusFromString(req.Verdict)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewReceiptCommand(session, receiptID, verdict, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reviewReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
