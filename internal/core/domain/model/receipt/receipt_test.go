package receipt_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceipt(t *testing.T) {
	t.Run("should create pending receipt", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		uploaderID := kernel.NewUUID()

		r, err := receipt.NewReceipt(id, orderID, uploaderID, "https://cdn.example.com/receipts/abc.png")

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.True(t, id.IsEqual(r.ID()))
		assert.True(t, orderID.IsEqual(r.OrderID()))
		assert.True(t, uploaderID.IsEqual(r.UploaderID()))
		assert.Equal(t, "https://cdn.example.com/receipts/abc.png", r.ReceiptURL())
		assert.Equal(t, receipt.Pending, r.Status())
		assert.Empty(t, r.Notes())
		assert.Nil(t, r.ReviewedBy())
		assert.Nil(t, r.ReviewedAt())
		assert.WithinDuration(t, time.Now().UTC(), r.CreatedAt(), time.Second)
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		_, err := receipt.NewReceipt(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "url")
		require.Error(t, err)

		_, err = receipt.NewReceipt(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "url")
		require.Error(t, err)

		_, err = receipt.NewReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "url")
		require.Error(t, err)
	})

	t.Run("should reject empty receipt URL", func(t *testing.T) {
		_, err := receipt.NewReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, receipt.ErrReceiptURLIsRequired)
	})

	t.Run("should reject nil receipt in Validate", func(t *testing.T) {
		var r *receipt.Receipt

		err := r.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, receipt.ErrReceiptIsNotConstructed)
	})
}

func TestRestoreReceipt(t *testing.T) {
	t.Run("should restore reviewed receipt", func(t *testing.T) {
		reviewerID := kernel.NewUUID()
		reviewedAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
		createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

		r, err := receipt.RestoreReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"https://cdn.example.com/receipts/abc.png", receipt.Verified, "bank transfer confirmed",
			&reviewerID, &reviewedAt, createdAt)

		require.NoError(t, err)
		assert.Equal(t, receipt.Verified, r.Status())
		assert.Equal(t, "bank transfer confirmed", r.Notes())
		require.NotNil(t, r.ReviewedBy())
		assert.True(t, reviewerID.IsEqual(*r.ReviewedBy()))
		require.NotNil(t, r.ReviewedAt())
		assert.Equal(t, reviewedAt, *r.ReviewedAt())
		assert.Equal(t, createdAt, r.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := receipt.RestoreReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"url", receipt.Unknown, "", nil, nil, time.Now().UTC())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "receipt status is invalid")
	})
}

func TestReceipt_Verify(t *testing.T) {
	newPendingReceipt := func(t *testing.T) *receipt.Receipt {
		t.Helper()
		r, err := receipt.NewReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"https://cdn.example.com/receipts/abc.png")
		require.NoError(t, err)
		return r
	}

	t.Run("should verify pending receipt and record reviewer", func(t *testing.T) {
		r := newPendingReceipt(t)
		reviewerID := kernel.NewUUID()

		err := r.Verify(reviewerID, "payment confirmed")

		require.NoError(t, err)
		assert.Equal(t, receipt.Verified, r.Status())
		assert.Equal(t, "payment confirmed", r.Notes())
		require.NotNil(t, r.ReviewedBy())
		assert.True(t, reviewerID.IsEqual(*r.ReviewedBy()))
		require.NotNil(t, r.ReviewedAt())
		assert.WithinDuration(t, time.Now().UTC(), *r.ReviewedAt(), time.Second)
	})

	t.Run("should reject invalid reviewer id", func(t *testing.T) {
		r := newPendingReceipt(t)

		err := r.Verify(kernel.UUID{}, "")

		require.Error(t, err)
		assert.Equal(t, receipt.Pending, r.Status())
	})

	t.Run("should reject re-review of verified receipt", func(t *testing.T) {
		r := newPendingReceipt(t)
		require.NoError(t, r.Verify(kernel.NewUUID(), ""))

		err := r.Verify(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot move verified receipt to verified")
	})

	t.Run("should reject verifying rejected receipt", func(t *testing.T) {
		r := newPendingReceipt(t)
		require.NoError(t, r.Reject(kernel.NewUUID(), "blurry image"))

		err := r.Verify(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot move rejected receipt to verified")
	})
}

func TestReceipt_Reject(t *testing.T) {
	t.Run("should reject pending receipt with notes", func(t *testing.T) {
		r, err := receipt.NewReceipt(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"https://cdn.example.com/receipts/abc.png")
		require.NoError(t, err)
		reviewerID := kernel.NewUUID()

		err = r.Reject(reviewerID, "amount does not match")

		require.NoError(t, err)
		assert.Equal(t, receipt.Rejected, r.Status())
		assert.Equal(t, "amount does not match", r.Notes())
		require.NotNil(t, r.ReviewedBy())
		assert.True(t, reviewerID.IsEqual(*r.ReviewedBy()))
	})
}

func TestStatus(t *testing.T) {
	t.Run("should validate reviewable statuses", func(t *testing.T) {
		assert.NoError(t, receipt.Pending.Validate())
		assert.NoError(t, receipt.Verified.Validate())
		assert.NoError(t, receipt.Rejected.Validate())
		assert.Error(t, receipt.Unknown.Validate())
		assert.Error(t, receipt.Status(42).Validate())
	})

	t.Run("should stringify statuses", func(t *testing.T) {
		assert.Equal(t, "pending", receipt.Pending.String())
		assert.Equal(t, "verified", receipt.Verified.String())
		assert.Equal(t, "rejected", receipt.Rejected.String())
		assert.Equal(t, "unknown", receipt.Unknown.String())
	})

	t.Run("should parse status names", func(t *testing.T) {
		status, err := receipt.StatusFromString("verified")
		require.NoError(t, err)
		assert.Equal(t, receipt.Verified, status)

		status, err = receipt.StatusFromString("rejected")
		require.NoError(t, err)
		assert.Equal(t, receipt.Rejected, status)

		_, err = receipt.StatusFromString("approved")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "receipt status is invalid")
	})
}
