package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// UpdateCartItemCommandHandler handles cart quantity changes.
// A requested quantity of zero or less removes the item instead.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart quantity updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity update. The item must belong to the calling
// buyer; items owned by other buyers are reported as not found.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	if cmd.Quantity() <= 0 {
		if err = cartRepo.Remove(ctx, item.ID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = item.ChangeQuantity(cmd.Quantity()); err != nil {
		return err
	}
	if err = cartRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
