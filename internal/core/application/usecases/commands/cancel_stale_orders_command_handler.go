package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// confirmed by their seller within the configured window. Each order is
// cancelled in its own transaction so one bad row does not block the sweep.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger.With("component", "stale_order_handler"),
	}
}

// Handle processes the sweep command and returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	stale, err := h.loadStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, ord := range stale {
		if err := h.cancelOne(ctx, ord); err != nil {
			h.logger.ErrorContext(ctx, "failed to cancel stale order",
				"order_id", ord.ID().String(), "error", err)
			continue
		}
		cancelled++
	}

	return cancelled, nil
}

func (h *CancelStaleOrdersCommandHandler) loadStale(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.OrderRepository().GetStalePending(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load stale orders: %w", err)
	}

	return stale, nil
}

func (h *CancelStaleOrdersCommandHandler) cancelOne(ctx context.Context, ord *order.Order) error {
	from := ord.Status()
	changed, err := ord.TransitionTo(order.Cancelled)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
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
