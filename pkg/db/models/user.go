package models

import (
	"time"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// User is the canonical identity entity. IDs come from the identity
// provider's subject claim, so they are opaque strings rather than UUIDs
// minted here.
type User struct {
	ID                   string                    `gorm:"column:id;primaryKey" json:"id"`
	Email                *string                   `gorm:"column:email;uniqueIndex" json:"email"`
	FirstName            *string                   `gorm:"column:first_name" json:"firstName"`
	LastName             *string                   `gorm:"column:last_name" json:"lastName"`
	ProfileImageURL      *string                   `gorm:"column:profile_image_url" json:"profileImageUrl"`
	StripeCustomerID     *string                   `gorm:"column:stripe_customer_id" json:"stripeCustomerId"`
	StripeSubscriptionID *string                   `gorm:"column:stripe_subscription_id" json:"stripeSubscriptionId"`
	SubscriptionStatus   *enums.SubscriptionStatus `gorm:"column:subscription_status" json:"subscriptionStatus"`
	Address              *string                   `gorm:"column:address" json:"address"`
	Phone                *string                   `gorm:"column:phone" json:"phone"`
	IsAdmin              bool                      `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`
	CreatedAt            time.Time                 `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt            time.Time                 `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
