package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type repository interface {
	GetOrCreateConversation(ctx context.Context, userID string) (*models.ChatConversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.ChatMessage, error)
	CreateMessage(ctx context.Context, conversationID uuid.UUID, role enums.ChatRole, content string) (*models.ChatMessage, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*models.ChatMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// Service is the chat assistant surface.
type Service interface {
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
	Submit(ctx context.Context, userID, content string) (*models.ChatMessage, error)
	DeleteMessage(ctx context.Context, userID string, id uuid.UUID) error
}

// ServiceParams groups dependencies for the chat service.
type ServiceParams struct {
	Repo       repository
	Completion CompletionClient
	Logger     *logger.Logger
}

type service struct {
	repo       repository
	completion CompletionClient
	logg       *logger.Logger
}

// NewService builds a chat service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("chat repo required")
	}
	if params.Completion == nil {
		return nil, fmt.Errorf("completion client required")
	}
	return &service{
		repo:       params.Repo,
		completion: params.Completion,
		logg:       params.Logger,
	}, nil
}

// History returns the user's full conversation, oldest first. First contact
// creates the conversation with no messages.
func (s *service) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	conversation, err := s.repo.GetOrCreateConversation(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve conversation")
	}
	messages, err := s.repo.ListMessages(ctx, conversation.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load messages")
	}
	return messages, nil
}

// Submit runs one chat turn: persist the user message, replay the full
// ordered history through the completion client, persist and return the
// assistant reply. A completion failure leaves the user message in place
// with no assistant row; the client sees the turn as failed and may retry,
// which appends a new user message.
func (s *service) Submit(ctx context.Context, userID, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Message content is required")
	}

	conversation, err := s.repo.GetOrCreateConversation(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve conversation")
	}

	ctx = logCtx(ctx, s.logg, conversation.ID)

	if _, err := s.repo.CreateMessage(ctx, conversation.ID, enums.ChatRoleUser, content); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist user message")
	}

	history, err := s.repo.ListMessages(ctx, conversation.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load history")
	}

	turns := make([]Turn, 0, len(history))
	for _, message := range history {
		turns = append(turns, Turn{Role: message.Role, Content: message.Content})
	}

	reply, err := s.completion.Complete(ctx, turns)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "chat.completion.failed", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate reply")
	}

	assistant, err := s.repo.CreateMessage(ctx, conversation.ID, enums.ChatRoleAssistant, reply)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist assistant message")
	}
	return assistant, nil
}

// DeleteMessage removes one message from the user's own transcript.
// Messages in another user's conversation read as absent.
func (s *service) DeleteMessage(ctx context.Context, userID string, id uuid.UUID) error {
	message, err := s.repo.GetMessage(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load message")
	}
	if message == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Message not found")
	}

	conversation, err := s.repo.GetOrCreateConversation(ctx, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve conversation")
	}
	if message.ConversationID != conversation.ID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Message not found")
	}

	err = s.repo.DeleteMessage(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Message not found")
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete message")
	}
	return nil
}

func logCtx(ctx context.Context, logg *logger.Logger, conversationID uuid.UUID) context.Context {
	if logg == nil {
		return ctx
	}
	return logg.WithConversationID(ctx, conversationID.String())
}
