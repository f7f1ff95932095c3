package controllers

import (
	"net/http"

	"github.com/DustyWalks/walksandlawns-app2025/api/middleware"
	"github.com/DustyWalks/walksandlawns-app2025/api/responses"
	"github.com/DustyWalks/walksandlawns-app2025/internal/billing"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type portalSessionResponse struct {
	URL string `json:"url"`
}

// CreatePortalSession opens a Stripe customer-portal session and returns
// its URL.
func CreatePortalSession(svc billing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		url, err := svc.CreatePortalSession(ctx, userID, r.Header.Get("Origin"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, portalSessionResponse{URL: url})
	}
}

// GetOrCreateSubscription returns the user's subscription checkout intent,
// creating the Stripe customer and subscription on first call.
func GetOrCreateSubscription(svc billing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		intent, err := svc.GetOrCreateSubscription(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, intent)
	}
}
