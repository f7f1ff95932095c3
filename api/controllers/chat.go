package controllers

import (
	"net/http"

	"github.com/DustyWalks/walksandlawns-app2025/api/middleware"
	"github.com/DustyWalks/walksandlawns-app2025/api/responses"
	"github.com/DustyWalks/walksandlawns-app2025/api/validators"
	"github.com/DustyWalks/walksandlawns-app2025/internal/chat"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type submitChatMessagePayload struct {
	Content string `json:"content"`
}

// ListChatMessages returns the user's conversation history, oldest first.
func ListChatMessages(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		messages, err := svc.History(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if messages == nil {
			messages = []models.ChatMessage{}
		}

		responses.WriteJSON(w, messages)
	}
}

// SubmitChatMessage runs one chat turn and returns the assistant reply.
// Content validation (including whitespace-only rejection) lives in the
// service so nothing is written before the check.
func SubmitChatMessage(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload submitChatMessagePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		assistant, err := svc.Submit(ctx, userID, payload.Content)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, assistant)
	}
}

// DeleteChatMessage removes one message from the caller's own transcript.
func DeleteChatMessage(svc chat.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if err := svc.DeleteMessage(ctx, userID, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteMessage(w, "Message deleted")
	}
}
