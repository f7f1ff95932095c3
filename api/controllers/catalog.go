package controllers

import (
	"context"
	"net/http"

	"github.com/DustyWalks/walksandlawns-app2025/api/responses"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
	pkgerrors "github.com/DustyWalks/walksandlawns-app2025/pkg/errors"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
)

type CatalogReader interface {
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
	ListAddOns(ctx context.Context) ([]models.AddOn, error)
}

// ListServiceTypes returns the public service-type catalog.
func ListServiceTypes(catalog CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		serviceTypes, err := catalog.ListServiceTypes(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list service types"))
			return
		}
		if serviceTypes == nil {
			serviceTypes = []models.ServiceType{}
		}

		responses.WriteJSON(w, serviceTypes)
	}
}

// ListAddOns returns the public add-on catalog.
func ListAddOns(catalog CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		addOns, err := catalog.ListAddOns(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list add-ons"))
			return
		}
		if addOns == nil {
			addOns = []models.AddOn{}
		}

		responses.WriteJSON(w, addOns)
	}
}
