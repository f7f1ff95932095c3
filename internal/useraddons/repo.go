package useraddons

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
)

// Repository exposes add-on activation persistence. Activations are only
// ever soft deleted so purchase history survives removal.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a user add-ons repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns the user's active activations, newest first.
// Deactivated rows stay in the table but never appear here.
func (r *Repository) ListActive(ctx context.Context, userID string) ([]models.UserAddOn, error) {
	var userAddOns []models.UserAddOn
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("purchased_at desc").
		Find(&userAddOns).Error
	if err != nil {
		return nil, err
	}
	return userAddOns, nil
}

// Get loads one activation regardless of active state; (nil, nil) on miss.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*models.UserAddOn, error) {
	var userAddOn models.UserAddOn
	err := r.db.WithContext(ctx).First(&userAddOn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userAddOn, nil
}

// Create records a new activation, active by default.
func (r *Repository) Create(ctx context.Context, userID string, dto CreateUserAddOnDTO) (*models.UserAddOn, error) {
	userAddOn := dto.ToModel(userID)
	if err := r.db.WithContext(ctx).Create(userAddOn).Error; err != nil {
		return nil, err
	}
	return userAddOn, nil
}

// Deactivate flips is_active to false. Never a DELETE; the row and its
// purchased_at survive. gorm.ErrRecordNotFound when no row matched.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserAddOn{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
