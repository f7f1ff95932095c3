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
	"github.com/DustyWalks/walksandlawns-app2025/internal/bookings"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type BookingsRepo interface {
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Create(ctx context.Context, userID string, dto bookings.CreateBookingDTO) (*models.Booking, error)
	Update(ctx context.Context, id uuid.UUID, dto bookings.UpdateBookingDTO) (*models.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListBookings returns the user's bookings, newest scheduled first.
func ListBookings(repo BookingsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := middleware.UserIDFromContext(ctx)
		list, err := repo.ListForUser(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list bookings"))
			return
		}
		if list == nil {
			list = []models.Booking{}
		}

		responses.WriteJSON(w, list)
	}
}

// CreateBooking schedules a service visit for the user.
func CreateBooking(repo BookingsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload bookings.CreateBookingDTO
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		created, err := repo.Create(ctx, userID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create booking"))
			return
		}

		responses.WriteJSON(w, created)
	}
}

// UpdateBooking applies a partial update to one of the user's bookings.
func UpdateBooking(repo BookingsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload bookings.UpdateBookingDTO
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := loadOwnedBooking(ctx, repo, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		updated, err := repo.Update(ctx, booking.ID, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update booking"))
			return
		}
		if updated == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Booking not found"))
			return
		}

		responses.WriteJSON(w, updated)
	}
}

// DeleteBooking hard deletes one of the user's bookings.
func DeleteBooking(repo BookingsRepo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		booking, err := loadOwnedBooking(ctx, repo, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := repo.Delete(ctx, booking.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Booking not found"))
				return
			}
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete booking"))
			return
		}

		responses.WriteMessage(w, "Booking deleted")
	}
}

// loadOwnedBooking resolves the booking and hides other users' rows behind
// a 404.
func loadOwnedBooking(ctx context.Context, repo BookingsRepo, id uuid.UUID) (*models.Booking, error) {
	booking, err := repo.Get(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load booking")
	}
	if booking == nil || booking.UserID != middleware.UserIDFromContext(ctx) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Booking not found")
	}
	return booking, nil
}
