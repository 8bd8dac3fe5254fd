package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/errs"
)

// ReviewReceiptCommandHandler handles sellers reviewing payment receipts.
//
// Authorization goes through the order: the receipt can only be reviewed by
// the seller on the order it is attached to. Receipts on other sellers'
// orders are reported as not found rather than forbidden.
type ReviewReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewReviewReceiptCommandHandler creates a handler for receipt review.
func NewReviewReceiptCommandHandler(uowFactory ReceiptUoWFactory) ReviewReceiptCommandHandler {
	return ReviewReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt review. Only pending receipts can be
// reviewed; the domain rejects re-reviewing a settled receipt.
func (h *ReviewReceiptCommandHandler) Handle(ctx context.Context, cmd ReviewReceiptCommand) error {
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

	rcpt, err := uow.ReceiptRepository().Get(ctx, cmd.ReceiptID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, rcpt.OrderID())
	if err != nil {
		return err
	}
	if !ord.SellerID().IsEqual(cmd.Session().UserID()) {
		return errs.NewObjectNotFoundError("receipt", cmd.ReceiptID().String())
	}

	switch cmd.Verdict() {
	case receipt.Verified:
		err = rcpt.Verify(cmd.Session().UserID(), cmd.Notes())
	case receipt.Rejected:
		err = rcpt.Reject(cmd.Session().UserID(), cmd.Notes())
	default:
		return errs.NewValueIsInvalidError("verdict is invalid")
	}
	if err != nil {
		return err
	}

	if err = uow.ReceiptRepository().Update(ctx, rcpt); err != nil {
		return fmt.Errorf("failed to update receipt: %w", err)
	}

	return uow.Commit(ctx)
}
