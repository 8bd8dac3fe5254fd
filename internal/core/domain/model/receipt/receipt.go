// Package receipt contains the PaymentReceipt entity: buyer-submitted proof
// of off-platform payment, reviewed by the counterpart seller.
package receipt

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not
	// created through the NewReceipt or RestoreReceipt factory functions.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")

	// ErrReceiptURLIsRequired is returned when the receipt asset URL is empty.
	ErrReceiptURLIsRequired = errs.NewValueIsRequiredError("receipt URL")
)

// Receipt is a payment receipt attached to an order by its buyer.
// Receipts are append-only from the buyer side: once created they are never
// edited by the buyer, and only the order's seller changes their status by
// verifying or rejecting them, which records who reviewed and when.
type Receipt struct {
	id         kernel.UUID
	orderID    kernel.UUID
	uploaderID kernel.UUID
	receiptURL string
	status     Status
	notes      string
	reviewedBy *kernel.UUID
	reviewedAt *time.Time
	createdAt  time.Time

	guard kernel.ConstructorGuard
}

// NewReceipt creates a pending receipt for an order, attributed to the
// uploading buyer. The URL references an already-uploaded asset; asset
// storage is handled outside the workflow engine.
func NewReceipt(id, orderID, uploaderID kernel.UUID, receiptURL string) (*Receipt, error) {
	r := &Receipt{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setUploaderID(uploaderID),
		r.setReceiptURL(receiptURL),
	); err != nil {
		return nil, err
	}

	r.createdAt = time.Now().UTC()
	return r, nil
}

// RestoreReceipt reconstructs a receipt from persistence, including its
// review metadata.
func RestoreReceipt(
	id, orderID, uploaderID kernel.UUID,
	receiptURL string,
	status Status,
	notes string,
	reviewedBy *kernel.UUID,
	reviewedAt *time.Time,
	createdAt time.Time,
) (*Receipt, error) {
	r, err := NewReceipt(id, orderID, uploaderID, receiptURL)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.notes = notes
	r.reviewedBy = reviewedBy
	r.reviewedAt = reviewedAt
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Receipt was created through a factory function.
func (r *Receipt) Validate() error {
	if r == nil {
		return ErrReceiptIsNotConstructed
	}
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the receipt belongs to.
func (r *Receipt) OrderID() kernel.UUID {
	return r.orderID
}

// UploaderID returns the identifier of the buyer who attached the receipt.
func (r *Receipt) UploaderID() kernel.UUID {
	return r.uploaderID
}

// ReceiptURL returns the reference to the uploaded receipt asset.
func (r *Receipt) ReceiptURL() string {
	return r.receiptURL
}

// Status returns the receipt's verification status.
func (r *Receipt) Status() Status {
	return r.status
}

// Notes returns the reviewer's optional notes.
func (r *Receipt) Notes() string {
	return r.notes
}

// ReviewedBy returns the reviewing seller's identifier, nil while pending.
func (r *Receipt) ReviewedBy() *kernel.UUID {
	return r.reviewedBy
}

// ReviewedAt returns when the receipt was reviewed, nil while pending.
func (r *Receipt) ReviewedAt() *time.Time {
	return r.reviewedAt
}

// CreatedAt returns when the receipt was attached.
func (r *Receipt) CreatedAt() time.Time {
	return r.createdAt
}

// Verify marks a pending receipt as verified by the given seller.
func (r *Receipt) Verify(reviewerID kernel.UUID, notes string) error {
	return r.review(Verified, reviewerID, notes)
}

// Reject marks a pending receipt as rejected by the given seller.
func (r *Receipt) Reject(reviewerID kernel.UUID, notes string) error {
	return r.review(Rejected, reviewerID, notes)
}

// review performs the pending -> verified/rejected transition and records
// the verification metadata.
func (r *Receipt) review(target Status, reviewerID kernel.UUID, notes string) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	if r.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"receipt status transition is invalid",
			fmt.Errorf("cannot move %s receipt to %s", r.status, target),
		)
	}

	now := time.Now().UTC()
	r.status = target
	r.notes = notes
	r.reviewedBy = &reviewerID
	r.reviewedAt = &now
	return nil
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Receipt) setUploaderID(uploaderID kernel.UUID) error {
	if err := uploaderID.Validate(); err != nil {
		return err
	}
	r.uploaderID = uploaderID
	return nil
}

func (r *Receipt) setReceiptURL(receiptURL string) error {
	if receiptURL == "" {
		return ErrReceiptURLIsRequired
	}
	r.receiptURL = receiptURL
	return nil
}
