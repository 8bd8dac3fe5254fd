// Package receiptrepo provides data transfer objects and mapping functions
// for payment receipt persistence.
package receiptrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// ReceiptDTO represents one payment receipt row. Review metadata stays
// NULL until the order's seller verifies or rejects the receipt.
type ReceiptDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	UploaderID uuid.UUID  `gorm:"type:uuid;index"`
	ReceiptURL string     `gorm:"not null"`
	Status     string     `gorm:"index;not null"`
	Notes      string     ``
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time
	CreatedAt  time.Time
}

// TableName specifies the database table name for payment receipts.
func (ReceiptDTO) TableName() string {
	return "payment_receipts"
}

// fromDomain converts a receipt to its database representation.
func fromDomain(aggregate *receipt.Receipt) ReceiptDTO {
	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return ReceiptDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		UploaderID: aggregate.UploaderID().Bytes(),
		ReceiptURL: aggregate.ReceiptURL(),
		Status:     aggregate.Status().String(),
		Notes:      aggregate.Notes(),
		ReviewedBy: reviewedBy,
		ReviewedAt: aggregate.ReviewedAt(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a receipt.
func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	uploaderID, err := kernel.UUIDFromBytes(dto.UploaderID[:])
	if err != nil {
		return nil, err
	}

	status, err := receipt.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, reviewErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewErr != nil {
			return nil, reviewErr
		}
		reviewedBy = &rID
	}

	return receipt.RestoreReceipt(
		id,
		orderID,
		uploaderID,
		dto.ReceiptURL,
		status,
		dto.Notes,
		reviewedBy,
		dto.ReviewedAt,
		dto.CreatedAt,
	)
}
