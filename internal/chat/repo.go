package chat

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// Repository exposes conversation and message persistence. Messages are
// append-only; their ascending created_at order is replayed verbatim as
// completion context.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a chat repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateConversation resolves the user's single conversation,
// creating it on first contact. The insert tolerates the unique-index
// conflict so two racing first messages converge on one conversation;
// a raw unique violation surfacing anyway falls through to the fetch.
func (r *Repository) GetOrCreateConversation(ctx context.Context, userID string) (*models.ChatConversation, error) {
	conversation := &models.ChatConversation{UserID: &userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(conversation).Error
	if err != nil && !db.IsUniqueViolation(err, "idx_chat_conversations_user_id") {
		return nil, err
	}

	var existing models.ChatConversation
	if err := r.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// ListMessages returns the conversation history ascending by created_at.
func (r *Repository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage appends one turn to the conversation.
func (r *Repository) CreateMessage(ctx context.Context, conversationID uuid.UUID, role enums.ChatRole, content string) (*models.ChatMessage, error) {
	message := &models.ChatMessage{
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessage loads one message; (nil, nil) on miss.
func (r *Repository) GetMessage(ctx context.Context, id uuid.UUID) (*models.ChatMessage, error) {
	var message models.ChatMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteMessage removes one message. gorm.ErrRecordNotFound when nothing
// matched.
func (r *Repository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ChatMessage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
