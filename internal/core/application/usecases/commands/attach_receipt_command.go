package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAttachReceiptCommandIsNotConstructed = errors.New(
		"AttachReceiptCommand must be created via NewAttachReceiptCommand constructor",
	)
	ErrReceiptURLIsRequired = errors.New("receipt URL is required")
)

// AttachReceiptCommand represents a buyer attaching proof of off-platform
// payment to one of their orders. The URL references an asset that was
// already uploaded elsewhere; this workflow only records the reference.
type AttachReceiptCommand struct { //nolint:recvcheck //using for validation
	session    kernel.Session
	orderID    kernel.UUID
	receiptURL string

	guard guard.ConstructorGuard
}

// NewAttachReceiptCommand creates a command to attach a receipt to an order.
func NewAttachReceiptCommand(
	session kernel.Session,
	orderID kernel.UUID,
	receiptURL string,
) (AttachReceiptCommand, error) {
	cmd := AttachReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setOrderID(orderID),
		cmd.setReceiptURL(receiptURL),
	); err != nil {
		return AttachReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachReceiptCommand) Validate() error {
	return c.guard.Validate(ErrAttachReceiptCommandIsNotConstructed)
}

// Session returns the buyer session attaching the receipt.
func (c AttachReceiptCommand) Session() kernel.Session {
	return c.session
}

// OrderID returns the order the receipt belongs to.
func (c AttachReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReceiptURL returns the reference to the uploaded receipt asset.
func (c AttachReceiptCommand) ReceiptURL() string {
	return c.receiptURL
}

func (c *AttachReceiptCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsBuyer() {
		return ErrSessionIsNotBuyer
	}
	c.session = session
	return nil
}

func (c *AttachReceiptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AttachReceiptCommand) setReceiptURL(receiptURL string) error {
	if receiptURL == "" {
		return ErrReceiptURLIsRequired
	}
	c.receiptURL = receiptURL
	return nil
}
