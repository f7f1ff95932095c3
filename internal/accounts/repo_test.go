package accounts

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

func setupAccountsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT UNIQUE,
  first_name TEXT,
  last_name TEXT,
  profile_image_url TEXT,
  stripe_customer_id TEXT,
  stripe_subscription_id TEXT,
  subscription_status TEXT,
  address TEXT,
  phone TEXT,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(users).Error)
	return db
}

func strPtr(s string) *string { return &s }

func TestGetUserMissingReturnsNilNil(t *testing.T) {
	repo := NewRepository(setupAccountsTestDB(t))

	user, err := repo.GetUser(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpsertInsertsThenRefreshes(t *testing.T) {
	repo := NewRepository(setupAccountsTestDB(t))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, UpsertUserDTO{
		ID:        "auth0|abc",
		Email:     strPtr("kara@example.com"),
		FirstName: strPtr("Kara"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "auth0|abc", created.ID)
	assert.Equal(t, "Kara", *created.FirstName)

	updated, err := repo.Upsert(ctx, UpsertUserDTO{
		ID:        "auth0|abc",
		Email:     strPtr("kara@example.com"),
		FirstName: strPtr("Kara"),
		LastName:  strPtr("Danvers"),
		Phone:     strPtr("780-555-0101"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Danvers", *updated.LastName)
	assert.Equal(t, "780-555-0101", *updated.Phone)

	// still a single row
	var count int64
	require.NoError(t, repo.db.Table("users").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateStripeInfo(t *testing.T) {
	repo := NewRepository(setupAccountsTestDB(t))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, UpsertUserDTO{ID: "auth0|abc", Email: strPtr("kara@example.com")})
	require.NoError(t, err)

	user, err := repo.UpdateStripeInfo(ctx, "auth0|abc", "cus_123", "sub_456", enums.SubscriptionStatusActive)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "cus_123", *user.StripeCustomerID)
	assert.Equal(t, "sub_456", *user.StripeSubscriptionID)
	assert.Equal(t, enums.SubscriptionStatusActive, *user.SubscriptionStatus)
	// profile columns untouched
	assert.Equal(t, "kara@example.com", *user.Email)
}

func TestUpdateStripeInfoMissingUser(t *testing.T) {
	repo := NewRepository(setupAccountsTestDB(t))

	_, err := repo.UpdateStripeInfo(context.Background(), "ghost", "cus_1", "sub_1", enums.SubscriptionStatusActive)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
