package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// CreateServiceTypeDTO describes a new catalog service.
type CreateServiceTypeDTO struct {
	Name          string  `json:"name" validate:"required"`
	Description   *string `json:"description"`
	Season        string  `json:"season" validate:"required,oneof=winter spring summer fall"`
	IsBaseService bool    `json:"isBaseService"`
}

func (d CreateServiceTypeDTO) ToModel() *models.ServiceType {
	return &models.ServiceType{
		Name:          d.Name,
		Description:   d.Description,
		Season:        enums.Season(d.Season),
		IsBaseService: d.IsBaseService,
	}
}

// CreateAddOnDTO describes a new purchasable add-on. Exactly one of the two
// prices must be set; models.AddOn.Validate enforces it.
type CreateAddOnDTO struct {
	Name         string           `json:"name" validate:"required"`
	Description  *string          `json:"description"`
	PriceMonthly *decimal.Decimal `json:"priceMonthly"`
	PriceOneTime *decimal.Decimal `json:"priceOneTime"`
	IsRecurring  bool             `json:"isRecurring"`
}

func (d CreateAddOnDTO) ToModel() *models.AddOn {
	addOn := &models.AddOn{
		Name:        d.Name,
		Description: d.Description,
		IsRecurring: d.IsRecurring,
	}
	if d.PriceMonthly != nil {
		addOn.PriceMonthly = decimal.NewNullDecimal(*d.PriceMonthly)
	}
	if d.PriceOneTime != nil {
		addOn.PriceOneTime = decimal.NewNullDecimal(*d.PriceOneTime)
	}
	return addOn
}

func decimalToNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

// UpdateAddOnDTO carries a partial add-on update. Nil fields are untouched.
type UpdateAddOnDTO struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	PriceMonthly *decimal.Decimal `json:"priceMonthly"`
	PriceOneTime *decimal.Decimal `json:"priceOneTime"`
	IsRecurring  *bool            `json:"isRecurring"`
}
