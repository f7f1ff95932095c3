package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// Repository exposes booking persistence. Bookings are hard deleted on
// explicit request, unlike add-on activations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a bookings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListForUser returns the user's bookings ordered scheduled_date desc.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_date desc").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Get loads one booking; (nil, nil) on miss.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Create inserts a booking. Status defaults to scheduled; completed_at is
// never set implicitly.
func (r *Repository) Create(ctx context.Context, userID string, dto CreateBookingDTO) (*models.Booking, error) {
	booking := dto.ToModel(userID)
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// Update applies a partial update and returns the refreshed row;
// (nil, nil) when the booking does not exist.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, dto UpdateBookingDTO) (*models.Booking, error) {
	updates := map[string]any{}
	if dto.ScheduledDate != nil {
		updates["scheduled_date"] = *dto.ScheduledDate
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}
	if dto.CompletedAt != nil {
		updates["completed_at"] = *dto.CompletedAt
	}
	if len(updates) == 0 {
		return r.Get(ctx, id)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// UpdateStatus transitions the booking status, stamping completed_at only
// when the caller supplies one.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus, completedAt *time.Time) (*models.Booking, error) {
	updates := map[string]any{"status": string(status)}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

// Delete removes the booking row. gorm.ErrRecordNotFound when nothing
// matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
