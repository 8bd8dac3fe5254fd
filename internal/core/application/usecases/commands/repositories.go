// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages the checkout transaction for one seller group:
	// order creation, stock decrements, and the group's cart-row deletions
	// commit or roll back together.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		ProductRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	// Checkout creates one unit of work per seller group, so each group
	// commits independently.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// ReceiptUoW manages transactions for receipt operations, which also
	// read orders to authorize the acting buyer or seller.
	ReceiptUoW interface {
		TxManager
		ReceiptRepoFactory
		OrderRepoFactory
	}

	// ReceiptUoWFactory creates new receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}
)
