package useraddons

import (
	"github.com/google/uuid"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
)

// CreateUserAddOnDTO activates an add-on for the authenticated user. The
// user id comes from the session, never the payload.
type CreateUserAddOnDTO struct {
	AddOnID uuid.UUID `json:"addOnId" validate:"required"`
}

func (d CreateUserAddOnDTO) ToModel(userID string) *models.UserAddOn {
	return &models.UserAddOn{
		UserID:   userID,
		AddOnID:  d.AddOnID,
		IsActive: true,
	}
}
