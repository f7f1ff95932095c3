package accounts

import "github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"

// UpsertUserDTO carries the profile claims delivered by the identity
// provider on login.
type UpsertUserDTO struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
}

func (d UpsertUserDTO) ToModel() *models.User {
	return &models.User{
		ID:              d.ID,
		Email:           d.Email,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		ProfileImageURL: d.ProfileImageURL,
		Address:         d.Address,
		Phone:           d.Phone,
	}
}
