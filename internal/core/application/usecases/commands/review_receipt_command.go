package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReviewReceiptCommandIsNotConstructed = errors.New(
	"ReviewReceiptCommand must be created via NewReviewReceiptCommand constructor",
)

// ReviewReceiptCommand represents a seller verifying or rejecting a pending
// payment receipt on one of their orders.
type ReviewReceiptCommand struct { //nolint:recvcheck //using for validation
	session   kernel.Session
	receiptID kernel.UUID
	verdict   receipt.Status
	notes     string

	guard guard.ConstructorGuard
}

// NewReviewReceiptCommand creates a command to review a receipt.
// The verdict must be Verified or Rejected.
func NewReviewReceiptCommand(
	session kernel.Session,
	receiptID kernel.UUID,
	verdict receipt.Status,
	notes string,
) (ReviewReceiptCommand, error) {
	cmd := ReviewReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSession(session),
		cmd.setReceiptID(receiptID),
		cmd.setVerdict(verdict),
	); err != nil {
		return ReviewReceiptCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewReceiptCommand) Validate() error {
	return c.guard.Validate(ErrReviewReceiptCommandIsNotConstructed)
}

// Session returns the seller session reviewing the receipt.
func (c ReviewReceiptCommand) Session() kernel.Session {
	return c.session
}

// ReceiptID returns the receipt being reviewed.
func (c ReviewReceiptCommand) ReceiptID() kernel.UUID {
	return c.receiptID
}

// Verdict returns the review outcome: Verified or Rejected.
func (c ReviewReceiptCommand) Verdict() receipt.Status {
	return c.verdict
}

// Notes returns the reviewer's optional notes.
func (c ReviewReceiptCommand) Notes() string {
	return c.notes
}

func (c *ReviewReceiptCommand) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if !session.IsSeller() {
		return ErrSessionIsNotSeller
	}
	c.session = session
	return nil
}

func (c *ReviewReceiptCommand) setReceiptID(receiptID kernel.UUID) error {
	if err := receiptID.Validate(); err != nil {
		return err
	}
	c.receiptID = receiptID
	return nil
}

func (c *ReviewReceiptCommand) setVerdict(verdict receipt.Status) error {
	if verdict != receipt.Verified && verdict != receipt.Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"verdict is invalid",
			fmt.Errorf("%s is not a review verdict", verdict),
		)
	}
	c.verdict = verdict
	return nil
}
