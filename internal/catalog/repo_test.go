package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	serviceTypes := `
CREATE TABLE IF NOT EXISTS service_types (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  season TEXT,
  is_base_service INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`
	addOns := `
CREATE TABLE IF NOT EXISTS add_ons (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price_monthly NUMERIC,
  price_one_time NUMERIC,
  is_recurring INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(serviceTypes).Error)
	require.NoError(t, db.Exec(addOns).Error)
	return db
}

func TestCreateAndListServiceTypes(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateServiceType(ctx, CreateServiceTypeDTO{
		Name:          "Lawn Mowing",
		Season:        "summer",
		IsBaseService: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	list, err := repo.ListServiceTypes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lawn Mowing", list[0].Name)
}

func TestCreateAddOnRejectsBothPrices(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	_, err := repo.CreateAddOn(context.Background(), CreateAddOnDTO{
		Name:         "Broken",
		PriceMonthly: money("10.00"),
		PriceOneTime: money("20.00"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCreateAddOnRejectsNoPrice(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	_, err := repo.CreateAddOn(context.Background(), CreateAddOnDTO{Name: "Free?"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateAddOnSwitchesPriceMode(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateAddOn(ctx, CreateAddOnDTO{
		Name:         "Lawn Aeration",
		PriceOneTime: money("89.00"),
	})
	require.NoError(t, err)

	monthly := decimal.RequireFromString("15.00")
	updated, err := repo.UpdateAddOn(ctx, created.ID, UpdateAddOnDTO{PriceMonthly: &monthly})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.PriceMonthly.Valid)
	assert.False(t, updated.PriceOneTime.Valid)
	assert.True(t, monthly.Equal(updated.PriceMonthly.Decimal))
}

func TestUpdateAddOnMissingReturnsNilNil(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))

	name := "renamed"
	updated, err := repo.UpdateAddOn(context.Background(), uuid.New(), UpdateAddOnDTO{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteAddOn(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateAddOn(ctx, CreateAddOnDTO{
		Name:         "Fertilization Program",
		PriceMonthly: money("39.00"),
		IsRecurring:  true,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAddOn(ctx, created.ID))

	got, err := repo.GetAddOn(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.DeleteAddOn(ctx, created.ID), gorm.ErrRecordNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, nil))
	require.NoError(t, repo.Seed(ctx, nil))

	serviceTypes, err := repo.ListServiceTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, serviceTypes, len(SeedServiceTypes))

	addOns, err := repo.ListAddOns(ctx)
	require.NoError(t, err)
	assert.Len(t, addOns, len(SeedAddOns))
}
