package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
)

// AddOn is an optional paid service layered onto the base subscription.
// Exactly one of PriceMonthly/PriceOneTime is populated.
type AddOn struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string              `gorm:"column:name;not null" json:"name"`
	Description  *string             `gorm:"column:description" json:"description"`
	PriceMonthly decimal.NullDecimal `gorm:"column:price_monthly;type:numeric(10,2)" json:"priceMonthly"`
	PriceOneTime decimal.NullDecimal `gorm:"column:price_one_time;type:numeric(10,2)" json:"priceOneTime"`
	IsRecurring  bool                `gorm:"column:is_recurring;not null;default:false" json:"isRecurring"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// Validate enforces the exclusive pricing invariant.
func (a *AddOn) Validate() error {
	if a.PriceMonthly.Valid == a.PriceOneTime.Valid {
		return pkgerrors.New(pkgerrors.CodeValidation, "add-on must set exactly one of priceMonthly or priceOneTime")
	}
	return nil
}

// BeforeCreate assigns an ID when needed and rejects rows violating the
// pricing invariant before they reach the database.
func (a *AddOn) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return a.Validate()
}
