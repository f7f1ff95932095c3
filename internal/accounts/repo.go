package accounts

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// ErrUserNotFound reports a stripe-info update against a missing user.
var ErrUserNotFound = errors.New("user not found")

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an accounts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetUser loads a user by id. A missing row is not an error: callers decide
// whether absence is a 404.
func (r *Repository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the user or refreshes their profile columns in a single
// statement, so concurrent logins cannot race each other.
func (r *Repository) Upsert(ctx context.Context, dto UpsertUserDTO) (*models.User, error) {
	user := dto.ToModel()
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email",
				"first_name",
				"last_name",
				"profile_image_url",
				"address",
				"phone",
				"updated_at",
			}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return r.GetUser(ctx, dto.ID)
}

// UpdateStripeInfo sets the user's stripe customer/subscription columns.
// Exactly these columns (plus updated_at) change; ErrUserNotFound when the
// user does not exist.
func (r *Repository) UpdateStripeInfo(ctx context.Context, userID, customerID, subscriptionID string, status enums.SubscriptionStatus) (*models.User, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"stripe_customer_id":     customerID,
			"stripe_subscription_id": subscriptionID,
			"subscription_status":    string(status),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.GetUser(ctx, userID)
}
