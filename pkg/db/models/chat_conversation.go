package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatConversation groups the chat messages between one user and the
// assistant. user_id carries a unique index so concurrent first-contact
// cannot create two conversations for the same user.
type ChatConversation struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *string   `gorm:"column:user_id;uniqueIndex" json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (c *ChatConversation) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
