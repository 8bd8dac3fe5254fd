package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RemoveCartItemCommandHandler handles removing one item from a buyer's cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart item removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal. The item must belong to the calling buyer.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	item, err := cartRepo.Get(ctx, cmd.CartItemID())
	if err != nil {
		return err
	}
	if !item.BuyerID().IsEqual(cmd.Session().UserID()) {
		return errs.NewObjectNotFoundError("cart item", cmd.CartItemID().String())
	}

	if err = cartRepo.Remove(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
