package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

func strPtr(s string) *string { return &s }

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedServiceTypes are the four base services included with the
// year-round subscription.
var SeedServiceTypes = []CreateServiceTypeDTO{
	{
		Name:          "Snow Removal",
		Description:   strPtr("Professional snow clearing for driveways and walkways"),
		Season:        "winter",
		IsBaseService: true,
	},
	{
		Name:          "Lawn Mowing",
		Description:   strPtr("Weekly professional lawn mowing and edging"),
		Season:        "summer",
		IsBaseService: true,
	},
	{
		Name:          "Spring Cleanup",
		Description:   strPtr("Complete yard cleanup and spring preparation"),
		Season:        "spring",
		IsBaseService: true,
	},
	{
		Name:          "Fall Cleanup",
		Description:   strPtr("Leaf removal and winter preparation"),
		Season:        "fall",
		IsBaseService: true,
	},
}

// SeedAddOns are the launch add-on catalog.
var SeedAddOns = []CreateAddOnDTO{
	{
		Name:         "Premium Snow Removal",
		Description:  strPtr("Priority service with salt and sand application"),
		PriceMonthly: money("49.00"),
		IsRecurring:  true,
	},
	{
		Name:         "Lawn Aeration",
		Description:  strPtr("Seasonal core aeration for healthier grass"),
		PriceOneTime: money("89.00"),
		IsRecurring:  false,
	},
	{
		Name:         "Fertilization Program",
		Description:  strPtr("4-step seasonal fertilization plan"),
		PriceMonthly: money("39.00"),
		IsRecurring:  true,
	},
	{
		Name:         "Additional Lawn/Walk",
		Description:  strPtr("Add coverage for extra property areas"),
		PriceMonthly: money("69.00"),
		IsRecurring:  true,
	},
}

// Seed inserts the launch catalog, skipping rows that already exist by
// name so reruns are safe.
func (r *Repository) Seed(ctx context.Context, logg *logger.Logger) error {
	for _, dto := range SeedServiceTypes {
		existing, err := r.FindServiceTypeByName(ctx, dto.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := r.CreateServiceType(ctx, dto); err != nil {
			return err
		}
		if logg != nil {
			logg.Info(logg.WithField(ctx, "service_type", dto.Name), "seed.service_type.created")
		}
	}

	for _, dto := range SeedAddOns {
		existing, err := r.FindAddOnByName(ctx, dto.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := r.CreateAddOn(ctx, dto); err != nil {
			return err
		}
		if logg != nil {
			logg.Info(logg.WithField(ctx, "add_on", dto.Name), "seed.add_on.created")
		}
	}

	return nil
}
