package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserAddOn records a user's activation of an add-on. Rows are soft
// deleted (is_active = false) so purchase history survives removal.
type UserAddOn struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id;not null;index" json:"userId"`
	AddOnID     uuid.UUID `gorm:"column:add_on_id;type:uuid;not null" json:"addOnId"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	PurchasedAt time.Time `gorm:"column:purchased_at;autoCreateTime" json:"purchasedAt"`
}

func (u *UserAddOn) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
