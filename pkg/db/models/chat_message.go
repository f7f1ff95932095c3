package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// ChatMessage is an append-only chat turn. Ascending created_at ordering is
// load-bearing: history is replayed verbatim as completion-API context.
type ChatMessage struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ConversationID uuid.UUID      `gorm:"column:conversation_id;type:uuid;not null;index" json:"conversationId"`
	Role           enums.ChatRole `gorm:"column:role;not null" json:"role"`
	Content        string         `gorm:"column:content;not null" json:"content"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (m *ChatMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
