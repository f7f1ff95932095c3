package chat

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
)

type stubRepo struct {
	conversation models.ChatConversation
	messages     []models.ChatMessage

	conversationCalls int
	createCalls       int
	createErr         error
}

func (s *stubRepo) GetOrCreateConversation(ctx context.Context, userID string) (*models.ChatConversation, error) {
	s.conversationCalls++
	if s.conversation.ID == uuid.Nil {
		s.conversation = models.ChatConversation{ID: uuid.New(), UserID: &userID}
	}
	conversation := s.conversation
	return &conversation, nil
}

func (s *stubRepo) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.ChatMessage, error) {
	return s.messages, nil
}

func (s *stubRepo) CreateMessage(ctx context.Context, conversationID uuid.UUID, role enums.ChatRole, content string) (*models.ChatMessage, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	message := models.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
	}
	s.messages = append(s.messages, message)
	return &message, nil
}

func (s *stubRepo) GetMessage(ctx context.Context, id uuid.UUID) (*models.ChatMessage, error) {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return &s.messages[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubCompletion struct {
	reply   string
	err     error
	calls   int
	history []Turn
}

func (s *stubCompletion) Complete(ctx context.Context, history []Turn) (string, error) {
	s.calls++
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestService(t *testing.T, repo *stubRepo, completion *stubCompletion) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Completion: completion})
	require.NoError(t, err)
	return svc
}

func TestSubmitEmptyContentRejectedBeforeAnyWork(t *testing.T) {
	repo := &stubRepo{}
	completion := &stubCompletion{reply: "hi"}
	svc := newTestService(t, repo, completion)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), "user-1", content)
		require.Error(t, err)

		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
		assert.Equal(t, http.StatusBadRequest, pkgerrors.MetadataFor(typed.Code()).HTTPStatus)
	}

	// nothing touched: no conversation resolution, no writes, no completion call
	assert.Zero(t, repo.conversationCalls)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, completion.calls)
}

func TestSubmitPersistsBothTurns(t *testing.T) {
	repo := &stubRepo{}
	completion := &stubCompletion{reply: "We cover snow removal all winter."}
	svc := newTestService(t, repo, completion)

	assistant, err := svc.Submit(context.Background(), "user-1", "  do you do snow?  ")
	require.NoError(t, err)
	require.NotNil(t, assistant)
	assert.Equal(t, enums.ChatRoleAssistant, assistant.Role)
	assert.Equal(t, "We cover snow removal all winter.", assistant.Content)

	require.Len(t, repo.messages, 2)
	assert.Equal(t, enums.ChatRoleUser, repo.messages[0].Role)
	assert.Equal(t, "do you do snow?", repo.messages[0].Content)

	// completion saw the trimmed user turn as part of the history
	require.Len(t, completion.history, 1)
	assert.Equal(t, "do you do snow?", completion.history[0].Content)
}

func TestSubmitCompletionFailureKeepsUserMessage(t *testing.T) {
	repo := &stubRepo{}
	completion := &stubCompletion{err: errors.New("completion api unavailable")}
	svc := newTestService(t, repo, completion)

	_, err := svc.Submit(context.Background(), "user-1", "hello?")
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInternal, typed.Code())
	assert.Equal(t, http.StatusInternalServerError, pkgerrors.MetadataFor(typed.Code()).HTTPStatus)

	// user turn survives, no assistant row
	require.Len(t, repo.messages, 1)
	assert.Equal(t, enums.ChatRoleUser, repo.messages[0].Role)
}

func TestSubmitReplaysFullHistory(t *testing.T) {
	conversationID := uuid.New()
	repo := &stubRepo{
		conversation: models.ChatConversation{ID: conversationID},
		messages: []models.ChatMessage{
			{ID: uuid.New(), ConversationID: conversationID, Role: enums.ChatRoleUser, Content: "hi"},
			{ID: uuid.New(), ConversationID: conversationID, Role: enums.ChatRoleAssistant, Content: "hello!"},
		},
	}
	completion := &stubCompletion{reply: "sure"}
	svc := newTestService(t, repo, completion)

	_, err := svc.Submit(context.Background(), "user-1", "one more thing")
	require.NoError(t, err)

	require.Len(t, completion.history, 3)
	assert.Equal(t, "hi", completion.history[0].Content)
	assert.Equal(t, "hello!", completion.history[1].Content)
	assert.Equal(t, "one more thing", completion.history[2].Content)
}

func TestDeleteMessageNotFound(t *testing.T) {
	svc := newTestService(t, &stubRepo{}, &stubCompletion{})

	err := svc.DeleteMessage(context.Background(), "user-1", uuid.New())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteMessageRemovesOwnMessage(t *testing.T) {
	conversationID := uuid.New()
	userID := "user-1"
	message := models.ChatMessage{ID: uuid.New(), ConversationID: conversationID, Role: enums.ChatRoleUser, Content: "hi"}
	repo := &stubRepo{
		conversation: models.ChatConversation{ID: conversationID, UserID: &userID},
		messages:     []models.ChatMessage{message},
	}
	svc := newTestService(t, repo, &stubCompletion{})

	require.NoError(t, svc.DeleteMessage(context.Background(), userID, message.ID))
	assert.Empty(t, repo.messages)
}

func TestDeleteMessageOtherUsersMessageReadsAsAbsent(t *testing.T) {
	theirConversationID := uuid.New()
	message := models.ChatMessage{ID: uuid.New(), ConversationID: theirConversationID, Role: enums.ChatRoleUser, Content: "private"}
	repo := &stubRepo{messages: []models.ChatMessage{message}}
	svc := newTestService(t, repo, &stubCompletion{})

	// the caller's own conversation (created on resolve) is not the
	// message's conversation
	err := svc.DeleteMessage(context.Background(), "user-2", message.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	// the row stays
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "private", repo.messages[0].Content)
}

func TestHistoryCreatesConversationOnFirstContact(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo, &stubCompletion{})

	messages, err := svc.History(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Equal(t, 1, repo.conversationCalls)
}
