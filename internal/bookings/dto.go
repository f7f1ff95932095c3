package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
)

// CreateBookingDTO schedules a service visit for the authenticated user.
type CreateBookingDTO struct {
	ServiceTypeID uuid.UUID `json:"serviceTypeId" validate:"required"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
	Notes         *string   `json:"notes"`
}

func (d CreateBookingDTO) ToModel(userID string) *models.Booking {
	return &models.Booking{
		UserID:        userID,
		ServiceTypeID: d.ServiceTypeID,
		ScheduledDate: d.ScheduledDate,
		Notes:         d.Notes,
	}
}

// UpdateBookingDTO carries a partial booking update. Nil fields are
// untouched; completedAt is only ever set when the caller supplies it.
type UpdateBookingDTO struct {
	ScheduledDate *time.Time `json:"scheduledDate"`
	Status        *string    `json:"status" validate:"omitempty,oneof=scheduled completed canceled"`
	Notes         *string    `json:"notes"`
	CompletedAt   *time.Time `json:"completedAt"`
}
