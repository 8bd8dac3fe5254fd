package receiptrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/receipt"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiptRepository {
	return &GormReceiptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new receipt to the database.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a review of an existing receipt: status, notes, and the
// reviewer metadata change together.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReceiptDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"notes":       dto.Notes,
			"reviewed_by": dto.ReviewedBy,
			"reviewed_at": dto.ReviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a receipt by ID.
func (r *GormReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all receipts attached to an order, oldest first.
func (r *GormReceiptRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*receipt.Receipt, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReceiptDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	receipts := make([]*receipt.Receipt, 0, len(dtos))
	for _, dto := range dtos {
		rcpt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, rcpt)
	}

	return receipts, nil
}
