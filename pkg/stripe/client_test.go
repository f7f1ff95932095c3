package stripe

import (
	"context"
	"testing"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/config"
)

func TestNewClientValidatesKeyAgainstEnv(t *testing.T) {
	ctx := context.Background()

	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "", Env: "test"}, nil); err == nil {
		t.Fatal("expected error for missing api key")
	}

	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_live_abc", Env: "test"}, nil); err == nil {
		t.Fatal("expected error for live key in test env")
	}

	if _, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_test_abc", Env: "somewhere"}, nil); err == nil {
		t.Fatal("expected error for unknown environment")
	}

	client, err := NewClient(ctx, config.StripeConfig{APIKey: "sk_test_abc", Env: ""}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("expected test environment, got %q", client.Environment())
	}
	if client.API() == nil {
		t.Fatal("expected initialized api client")
	}
}
