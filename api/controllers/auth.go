package controllers

import (
	"context"
	"net/http"

	"github.com/DustyWalks/walksandlawns-app2025/api/middleware"
	"github.com/DustyWalks/walksandlawns-app2025/api/responses"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type AccountsReader interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// GetAuthUser returns the authenticated user's record.
func GetAuthUser(accounts AccountsReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		user, err := accounts.GetUser(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user"))
			return
		}
		if user == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "User not found"))
			return
		}

		responses.WriteJSON(w, user)
	}
}
