package cartrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart item to the database.
func (r *GormCartRepository) Add(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves a quantity change to an existing cart item.
func (r *GormCartRepository) Update(ctx context.Context, item *cart.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).
		Where("id = ?", item.ID().Bytes()).
		Update("quantity", item.Quantity())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a cart item by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByBuyer retrieves every cart item belonging to the buyer, oldest first.
func (r *GormCartRepository) GetByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*cart.Item, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetByBuyerAndProduct retrieves the buyer's cart item for one product.
func (r *GormCartRepository) GetByBuyerAndProduct(
	ctx context.Context,
	buyerID, productID kernel.UUID,
) (*cart.Item, error) {
	if err := errors.Join(buyerID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "buyer_id = ? AND product_id = ?", buyerID.Bytes(), productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes one cart item by ID.
func (r *GormCartRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes()).Error
}

// RemoveByBuyerAndProducts deletes the buyer's cart items for the given
// products. Used by checkout to clear one seller group inside that group's
// transaction.
func (r *GormCartRepository) RemoveByBuyerAndProducts(
	ctx context.Context,
	buyerID kernel.UUID,
	productIDs []kernel.UUID,
) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(productIDs))
	for _, productID := range productIDs {
		if err := productID.Validate(); err != nil {
			return err
		}
		ids = append(ids, productID.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id IN ?", buyerID.Bytes(), ids).
		Delete(&CartItemDTO{}).Error
}

// ClearByBuyer deletes every cart item belonging to the buyer.
func (r *GormCartRepository) ClearByBuyer(ctx context.Context, buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID.Bytes()).
		Delete(&CartItemDTO{}).Error
}
