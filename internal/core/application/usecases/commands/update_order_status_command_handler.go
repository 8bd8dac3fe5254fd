package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// Only the seller on the order may move it. Transitions are checked against
// the status state machine before any write: invalid transitions fail with
// a typed error, and a transition to the current status succeeds as a no-op
// without touching the store, making retries and double-submits harmless.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger.With("component", "order_status_handler"),
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !ord.SellerID().IsEqual(cmd.Session().UserID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	from := ord.Status()
	changed, err := ord.TransitionTo(cmd.Target())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.events.OrderStatusChanged(ctx, ord.ID(), from, ord.Status()); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order status event",
			"order_id", ord.ID().String(), "error", err)
	}

	return nil
}
