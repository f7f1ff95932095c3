package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/enums"
)

// Booking is a scheduled or completed occurrence of a service type for a
// user. Bookings are hard deleted on explicit request, unlike add-on
// activations.
type Booking struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        string              `gorm:"column:user_id;not null;index" json:"userId"`
	ServiceTypeID uuid.UUID           `gorm:"column:service_type_id;type:uuid;not null" json:"serviceTypeId"`
	ScheduledDate time.Time           `gorm:"column:scheduled_date;not null" json:"scheduledDate"`
	Status        enums.BookingStatus `gorm:"column:status;not null;default:'scheduled'" json:"status"`
	Notes         *string             `gorm:"column:notes" json:"notes"`
	CompletedAt   *time.Time          `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = enums.BookingStatusScheduled
	}
	return nil
}
