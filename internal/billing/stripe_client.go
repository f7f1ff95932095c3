package billing

import (
	"context"
	"strings"
	"sync"

	"github.com/stripe/stripe-go/v84"
	bpsession "github.com/stripe/stripe-go/v84/billingportal/session"
	"github.com/stripe/stripe-go/v84/customer"
	"github.com/stripe/stripe-go/v84/product"
	"github.com/stripe/stripe-go/v84/subscription"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/config"
	pkgstripe "github.com/DustyWalks/walksandlawns-app2025/pkg/stripe"
)

// SubscriptionResult is the slice of a Stripe subscription the service
// needs: its id, status, and the payment client secret when one exists on
// the latest invoice.
type SubscriptionResult struct {
	SubscriptionID string
	Status         string
	ClientSecret   string
}

// StripeClient exposes the subset of Stripe operations required by the
// billing service, so the service can be tested with stubs.
type StripeClient interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSubscription(ctx context.Context, customerID string) (*SubscriptionResult, error)
	RetrieveSubscription(ctx context.Context, subscriptionID string) (*SubscriptionResult, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type stripeClientWrapper struct {
	currency           string
	unitAmountCents    int64
	productName        string
	productDescription string

	mu        sync.Mutex
	productID string
}

// NewStripeClient wraps the initialized Stripe client with the configured
// monthly price so the billing service can be tested.
func NewStripeClient(api *pkgstripe.Client, cfg config.StripeConfig) StripeClient {
	if api == nil {
		return nil
	}
	return &stripeClientWrapper{
		currency:           cfg.Currency,
		unitAmountCents:    cfg.MonthlyPriceCents,
		productName:        cfg.ProductName,
		productDescription: cfg.ProductDescription,
	}
}

func (w *stripeClientWrapper) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	created, err := customer.New(params)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (w *stripeClientWrapper) CreateSubscription(ctx context.Context, customerID string) (*SubscriptionResult, error) {
	productID, err := w.ensureProduct(ctx)
	if err != nil {
		return nil, err
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{{
			PriceData: &stripe.SubscriptionItemPriceDataParams{
				Currency: stripe.String(w.currency),
				Product:  stripe.String(productID),
				Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				},
				UnitAmount: stripe.Int64(w.unitAmountCents),
			},
		}},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.confirmation_secret")

	created, err := subscription.New(params)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(created), nil
}

func (w *stripeClientWrapper) RetrieveSubscription(ctx context.Context, subscriptionID string) (*SubscriptionResult, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	params.AddExpand("latest_invoice.confirmation_secret")

	retrieved, err := subscription.Get(subscriptionID, params)
	if err != nil {
		return nil, err
	}
	return subscriptionResult(retrieved), nil
}

func (w *stripeClientWrapper) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx
	created, err := bpsession.New(params)
	if err != nil {
		return "", err
	}
	return created.URL, nil
}

// ensureProduct lazily creates the subscription product. Stripe requires a
// product id for inline price_data; the id is cached for the process
// lifetime.
func (w *stripeClientWrapper) ensureProduct(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.productID != "" {
		return w.productID, nil
	}

	params := &stripe.ProductParams{
		Name: stripe.String(w.productName),
	}
	if strings.TrimSpace(w.productDescription) != "" {
		params.Description = stripe.String(w.productDescription)
	}
	params.Context = ctx

	created, err := product.New(params)
	if err != nil {
		return "", err
	}
	w.productID = created.ID
	return w.productID, nil
}

func subscriptionResult(sub *stripe.Subscription) *SubscriptionResult {
	result := &SubscriptionResult{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.ConfirmationSecret != nil {
		result.ClientSecret = sub.LatestInvoice.ConfirmationSecret.ClientSecret
	}
	return result
}
