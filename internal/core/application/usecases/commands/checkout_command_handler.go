package commands

import (
	"context"
	"fmt"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checkout runs against an empty cart.
var ErrCartIsEmpty = errs.NewValueIsRequiredError("cart is empty")

// CheckoutCommandHandler implements the order-creation workflow: it splits
// the buyer's cart into per-seller groups and materializes each group as one
// pending order with current prices, a unique order number, clamped stock
// decrements, and the group's cart rows removed.
//
// Each seller group commits in its own transaction, in ascending seller-ID
// order. A failure after the first committed group surfaces as a
// *PartialCheckoutError; committed groups are not compensated.
type CheckoutCommandHandler struct {
	uowFactory   CheckoutUoWFactory
	orderNumbers ports.OrderNumberGenerator
	events       ports.OrderEventPublisher
	planner      services.CheckoutPlanner
	logger       *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for the checkout workflow.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	orderNumbers ports.OrderNumberGenerator,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:   uowFactory,
		orderNumbers: orderNumbers,
		events:       events,
		planner:      services.NewCheckoutPlanner(),
		logger:       logger.With("component", "checkout_handler"),
	}
}

// Handle processes the checkout command and returns the created orders,
// one per distinct seller in the cart.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	buyerID := cmd.Session().UserID()

	drafts, err := h.planGroups(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	created := make([]*order.Order, 0, len(drafts))
	for _, draft := range drafts {
		ord, groupErr := h.commitGroup(ctx, cmd, draft)
		if groupErr != nil {
			if len(created) > 0 {
				return nil, &PartialCheckoutError{
					CreatedOrders:  created,
					FailedSellerID: draft.SellerID,
					Err:            groupErr,
				}
			}
			return nil, groupErr
		}
		created = append(created, ord)
	}

	// Each committed group already deleted its own cart rows; this sweep
	// clears anything the buyer added while checkout was running. The
	// orders are committed at this point, so a failure here is logged
	// rather than surfaced.
	if err = h.uowFactory.Create().CartRepository().ClearByBuyer(ctx, buyerID); err != nil {
		h.logger.WarnContext(ctx, "failed to clear cart after checkout", "buyer_id", buyerID.String(), "error", err)
	}

	for _, ord := range created {
		if err = h.events.OrderCreated(ctx, ord); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order created event",
				"order_id", ord.ID().String(), "error", err)
		}
	}

	return created, nil
}

// planGroups reads the cart, resolves each item against the catalog at
// current prices, and partitions the result into per-seller drafts.
func (h *CheckoutCommandHandler) planGroups(
	ctx context.Context,
	buyerID kernel.UUID,
) ([]services.OrderDraft, error) {
	uow := h.uowFactory.Create()

	items, err := uow.CartRepository().GetByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartIsEmpty
	}

	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart products: %w", err)
	}

	byID := make(map[kernel.UUID]services.CartLine, len(products))
	for _, p := range products {
		byID[p.ID()] = services.CartLine{
			ProductID: p.ID(),
			SellerID:  p.SellerID(),
			UnitPrice: p.Price(),
		}
	}

	lines := make([]services.CartLine, 0, len(items))
	for _, item := range items {
		line, ok := byID[item.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", item.ProductID().String())
		}
		line.Quantity = item.Quantity()
		lines = append(lines, line)
	}

	return h.planner.Plan(lines)
}

// commitGroup materializes one seller group: order number, order row and
// line items, clamped stock decrements, and the group's cart-row deletions,
// all in a single transaction.
func (h *CheckoutCommandHandler) commitGroup(
	ctx context.Context,
	cmd CheckoutCommand,
	draft services.OrderDraft,
) (*order.Order, error) {
	number, err := h.orderNumbers.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	ord, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		cmd.Session().UserID(),
		draft.SellerID,
		cmd.ShippingAddress(),
		cmd.Notes(),
		draft.Items,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin checkout transaction: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	groupProducts := make([]kernel.UUID, 0, len(draft.Items))
	for _, item := range draft.Items {
		if err = uow.ProductRepository().DecrementStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
		groupProducts = append(groupProducts, item.ProductID())
	}

	if err = uow.CartRepository().RemoveByBuyerAndProducts(ctx, cmd.Session().UserID(), groupProducts); err != nil {
		return nil, fmt.Errorf("failed to remove ordered cart items: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit checkout transaction: %w", err)
	}

	return ord, nil
}
