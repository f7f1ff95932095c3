package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DustyWalks/walksandlawns-app2025/internal/billing"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
)

type stubBillingService struct {
	intent *billing.SubscriptionIntent
	url    string

	subscriptionErr error
	portalErr       error

	gotOrigin string
}

func (s *stubBillingService) GetOrCreateSubscription(ctx context.Context, userID string) (*billing.SubscriptionIntent, error) {
	if s.subscriptionErr != nil {
		return nil, s.subscriptionErr
	}
	return s.intent, nil
}

func (s *stubBillingService) CreatePortalSession(ctx context.Context, userID, origin string) (string, error) {
	s.gotOrigin = origin
	if s.portalErr != nil {
		return "", s.portalErr
	}
	return s.url, nil
}

func TestGetOrCreateSubscriptionReturnsIntent(t *testing.T) {
	svc := &stubBillingService{intent: &billing.SubscriptionIntent{
		SubscriptionID: "sub_1",
		ClientSecret:   "pi_secret",
	}}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/get-or-create-subscription", nil), "user-1")
	rec := httptest.NewRecorder()

	GetOrCreateSubscription(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body billing.SubscriptionIntent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sub_1", body.SubscriptionID)
	assert.Equal(t, "pi_secret", body.ClientSecret)
}

func TestGetOrCreateSubscriptionStripeFailureIs400WithMessage(t *testing.T) {
	svc := &stubBillingService{
		subscriptionErr: pkgerrors.New(pkgerrors.CodeUpstream, "Your card was declined."),
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/get-or-create-subscription", nil), "user-1")
	rec := httptest.NewRecorder()

	GetOrCreateSubscription(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Your card was declined.", body["message"])
}

func TestCreatePortalSessionPassesOrigin(t *testing.T) {
	svc := &stubBillingService{url: "https://billing.stripe.com/p/session_1"}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/create-customer-portal-session", nil), "user-1")
	req.Header.Set("Origin", "https://walksandlawns.com")
	rec := httptest.NewRecorder()

	CreatePortalSession(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://walksandlawns.com", svc.gotOrigin)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://billing.stripe.com/p/session_1", body["url"])
}

func TestCreatePortalSessionNoCustomerIs400(t *testing.T) {
	svc := &stubBillingService{
		portalErr: pkgerrors.New(pkgerrors.CodeValidation, "No Stripe customer found. Please subscribe first."),
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/create-customer-portal-session", nil), "user-1")
	rec := httptest.NewRecorder()

	CreatePortalSession(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No Stripe customer found. Please subscribe first.", body["message"])
}

func TestCreatePortalSessionMissingUserIs404(t *testing.T) {
	svc := &stubBillingService{
		portalErr: pkgerrors.New(pkgerrors.CodeNotFound, "User not found"),
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/create-customer-portal-session", nil), "ghost")
	rec := httptest.NewRecorder()

	CreatePortalSession(svc, testLogger())(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
