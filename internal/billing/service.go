package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type accountsRepository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateStripeInfo(ctx context.Context, userID, customerID, subscriptionID string, status enums.SubscriptionStatus) (*models.User, error)
}

// SubscriptionIntent is what the checkout page needs to confirm payment.
type SubscriptionIntent struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret,omitempty"`
}

// Service is the Stripe-facing billing surface.
type Service interface {
	GetOrCreateSubscription(ctx context.Context, userID string) (*SubscriptionIntent, error)
	CreatePortalSession(ctx context.Context, userID, origin string) (string, error)
}

// ServiceParams groups dependencies for the billing service.
type ServiceParams struct {
	Accounts        accountsRepository
	Stripe          StripeClient
	PortalReturnURL string
	Logger          *logger.Logger
}

type service struct {
	accounts        accountsRepository
	stripe          StripeClient
	portalReturnURL string
	logg            *logger.Logger
}

// NewService builds a billing service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Accounts == nil {
		return nil, fmt.Errorf("accounts repo required")
	}
	if params.Stripe == nil {
		return nil, fmt.Errorf("stripe client required")
	}
	if strings.TrimSpace(params.PortalReturnURL) == "" {
		return nil, fmt.Errorf("portal return url required")
	}
	return &service{
		accounts:        params.Accounts,
		stripe:          params.Stripe,
		portalReturnURL: params.PortalReturnURL,
		logg:            params.Logger,
	}, nil
}

// GetOrCreateSubscription returns the user's existing subscription or
// starts a new one with the configured monthly price. Stripe ids and status
// are persisted on the user after creation; there is no webhook
// reconciliation, so the stored status can lag Stripe until the next write.
func (s *service) GetOrCreateSubscription(ctx context.Context, userID string) (*SubscriptionIntent, error) {
	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}

	if user.StripeSubscriptionID != nil && *user.StripeSubscriptionID != "" {
		existing, err := s.stripe.RetrieveSubscription(ctx, *user.StripeSubscriptionID)
		if err != nil {
			return nil, upstreamError(err, "retrieve subscription")
		}
		return &SubscriptionIntent{
			SubscriptionID: existing.SubscriptionID,
			ClientSecret:   existing.ClientSecret,
		}, nil
	}

	if user.Email == nil || strings.TrimSpace(*user.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "No user email on file")
	}

	customerID, err := s.stripe.CreateCustomer(ctx, *user.Email, customerName(user))
	if err != nil {
		return nil, upstreamError(err, "create customer")
	}

	created, err := s.stripe.CreateSubscription(ctx, customerID)
	if err != nil {
		return nil, upstreamError(err, "create subscription")
	}

	status := enums.SubscriptionStatus(created.Status)
	if _, err := s.accounts.UpdateStripeInfo(ctx, user.ID, customerID, created.SubscriptionID, status); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist stripe info")
	}

	if s.logg != nil {
		fields := map[string]any{
			"stripe_customer_id":     customerID,
			"stripe_subscription_id": created.SubscriptionID,
		}
		s.logg.Info(s.logg.WithFields(ctx, fields), "billing.subscription.created")
	}

	return &SubscriptionIntent{
		SubscriptionID: created.SubscriptionID,
		ClientSecret:   created.ClientSecret,
	}, nil
}

// CreatePortalSession opens a Stripe customer-portal session for the user.
// The return URL prefers the request origin so the portal lands back on the
// dashboard the user came from.
func (s *service) CreatePortalSession(ctx context.Context, userID, origin string) (string, error) {
	user, err := s.accounts.GetUser(ctx, userID)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if user == nil {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	if user.StripeCustomerID == nil || strings.TrimSpace(*user.StripeCustomerID) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "No Stripe customer found. Please subscribe first.")
	}

	returnURL := s.portalReturnURL
	if strings.TrimSpace(origin) != "" {
		returnURL = strings.TrimRight(origin, "/") + "/dashboard?from=portal"
	}

	url, err := s.stripe.CreatePortalSession(ctx, *user.StripeCustomerID, returnURL)
	if err != nil {
		return "", upstreamError(err, "create portal session")
	}
	return url, nil
}

func customerName(user *models.User) string {
	first := ""
	if user.FirstName != nil {
		first = *user.FirstName
	}
	last := ""
	if user.LastName != nil {
		last = *user.LastName
	}
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" && user.Email != nil {
		name = *user.Email
	}
	return name
}

// upstreamError surfaces Stripe's own message when one exists; the API
// contract passes it through with a 400.
func upstreamError(err error, fallback string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, stripeErr.Msg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fallback)
}
