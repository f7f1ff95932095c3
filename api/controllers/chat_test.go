package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
)

type stubChatService struct {
	history   []models.ChatMessage
	assistant *models.ChatMessage

	submitErr error
	deleteErr error

	submitCalls   int
	submitContent string
	deleteUserID  string
}

func (s *stubChatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	return s.history, nil
}

func (s *stubChatService) Submit(ctx context.Context, userID, content string) (*models.ChatMessage, error) {
	s.submitCalls++
	s.submitContent = content
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Message content is required")
	}
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.assistant, nil
}

func (s *stubChatService) DeleteMessage(ctx context.Context, userID string, id uuid.UUID) error {
	s.deleteUserID = userID
	return s.deleteErr
}

func TestListChatMessagesEmptyHistoryIsEmptyArray(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/chat/messages", nil), "user-1")
	rec := httptest.NewRecorder()

	ListChatMessages(&stubChatService{}, testLogger())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestSubmitChatMessage(t *testing.T) {
	svc := &stubChatService{assistant: &models.ChatMessage{
		ID:      uuid.New(),
		Role:    enums.ChatRoleAssistant,
		Content: "We handle snow all winter.",
	}}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/chat/messages",
		strings.NewReader(`{"content":"do you do snow?"}`)), "user-1")
	rec := httptest.NewRecorder()

	SubmitChatMessage(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, enums.ChatRoleAssistant, body.Role)
	assert.Equal(t, "We handle snow all winter.", body.Content)
}

func TestSubmitChatMessageEmptyContentIs400(t *testing.T) {
	svc := &stubChatService{}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/chat/messages",
		strings.NewReader(`{"content":"   "}`)), "user-1")
	rec := httptest.NewRecorder()

	SubmitChatMessage(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Message content is required", body["message"])
}

func TestSubmitChatMessageCompletionFailureIs500(t *testing.T) {
	svc := &stubChatService{
		submitErr: pkgerrors.New(pkgerrors.CodeInternal, "generate reply"),
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/chat/messages",
		strings.NewReader(`{"content":"hello"}`)), "user-1")
	rec := httptest.NewRecorder()

	SubmitChatMessage(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["message"])
}

func TestDeleteChatMessage(t *testing.T) {
	svc := &stubChatService{}
	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/chat/messages/x", nil), "user-1")
	req = withURLParam(req, "id", uuid.NewString())
	rec := httptest.NewRecorder()

	DeleteChatMessage(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Message deleted", body["message"])

	// the session user scopes the delete
	assert.Equal(t, "user-1", svc.deleteUserID)
}

func TestDeleteChatMessageNotFound(t *testing.T) {
	svc := &stubChatService{deleteErr: pkgerrors.New(pkgerrors.CodeNotFound, "Message not found")}

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/chat/messages/x", nil), "user-1")
	req = withURLParam(req, "id", uuid.NewString())
	rec := httptest.NewRecorder()

	DeleteChatMessage(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
