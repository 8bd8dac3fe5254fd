package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/errs"
)

// AttachReceiptCommandHandler handles buyers attaching payment receipts to
// their orders. Creates the receipt in pending status, attributed to the
// calling buyer, awaiting the seller's review.
type AttachReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewAttachReceiptCommandHandler creates a handler for receipt attachment.
func NewAttachReceiptCommandHandler(uowFactory ReceiptUoWFactory) AttachReceiptCommandHandler {
	return AttachReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt attachment. The order must belong to the
// calling buyer; other buyers' orders are reported as not found.
func (h *AttachReceiptCommandHandler) Handle(ctx context.Context, cmd AttachReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.BuyerID().IsEqual(cmd.Session().UserID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	rcpt, err := receipt.NewReceipt(kernel.NewUUID(), ord.ID(), cmd.Session().UserID(), cmd.ReceiptURL())
	if err != nil {
		return err
	}

	if err = uow.ReceiptRepository().Add(ctx, rcpt); err != nil {
		return fmt.Errorf("failed to attach receipt: %w", err)
	}

	return uow.Commit(ctx)
}
