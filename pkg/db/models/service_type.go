package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// ServiceType is a catalog entry for work covered by the base subscription
// (or offered seasonally).
type ServiceType struct {
	ID            uuid.UUID    `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string       `gorm:"column:name;not null" json:"name"`
	Description   *string      `gorm:"column:description" json:"description"`
	Season        enums.Season `gorm:"column:season" json:"season"`
	IsBaseService bool         `gorm:"column:is_base_service;not null;default:true" json:"isBaseService"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// BeforeCreate assigns an ID when the database default is unavailable
// (sqlite in tests has no gen_random_uuid).
func (s *ServiceType) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
