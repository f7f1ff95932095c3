package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/api/middleware"
	"github.com/DustyWalks/walksandlawns-app2025/api/responses"
	"github.com/DustyWalks/walksandlawns-app2025/api/validators"
	"github.com/DustyWalks/walksandlawns-app2025/internal/useraddons"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type UserAddOnsRepo interface {
	ListActive(ctx context.Context, userID string) ([]models.UserAddOn, error)
	Get(ctx context.Context, id uuid.UUID) (*models.UserAddOn, error)
	Create(ctx context.Context, userID string, dto useraddons.CreateUserAddOnDTO) (*models.UserAddOn, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ListUserAddOns returns the user's active add-on activations.
func ListUserAddOns(repo UserAddOnsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		userAddOns, err := repo.ListActive(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list user add-ons"))
			return
		}
		if userAddOns == nil {
			userAddOns = []models.UserAddOn{}
		}

		responses.WriteJSON(w, userAddOns)
	}
}

// CreateUserAddOn activates an add-on for the user.
func CreateUserAddOn(repo UserAddOnsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload useraddons.CreateUserAddOnDTO
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		created, err := repo.Create(ctx, userID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user add-on"))
			return
		}

		responses.WriteJSON(w, created)
	}
}

// DeleteUserAddOn soft deletes one of the user's activations. The row
// survives with is_active false.
func DeleteUserAddOn(repo UserAddOnsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		userAddOn, err := repo.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user add-on"))
			return
		}
		if userAddOn == nil || userAddOn.UserID != userID {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Add-on not found"))
			return
		}

		if err := repo.Deactivate(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Add-on not found"))
				return
			}
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivate user add-on"))
			return
		}

		responses.WriteMessage(w, "Add-on removed")
	}
}
