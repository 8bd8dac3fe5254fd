package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding a product to a buyer's cart.
// Merges into the existing (buyer, product) row when one exists, otherwise
// inserts a new row.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command. The read-merge-write sequence
// runs inside a transaction; concurrent double-submission by the same buyer
// is otherwise unguarded.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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
	buyerID := cmd.Session().UserID()

	existing, err := cartRepo.GetByBuyerAndProduct(ctx, buyerID, cmd.ProductID())
	switch {
	case err == nil:
		if err = existing.Merge(cmd.Quantity()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		item, itemErr := cart.NewItem(kernel.NewUUID(), buyerID, cmd.ProductID(), cmd.Quantity())
		if itemErr != nil {
			return itemErr
		}
		if err = cartRepo.Add(ctx, item); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
