package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/locofly/inventory-backend/api/responses"
	"github.com/locofly/inventory-backend/api/validators"
	"github.com/locofly/inventory-backend/internal/inventory"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/logger"
)

type createLocationRequest struct {
	LocationID int64 `json:"location_id" validate:"required,gt=0"`
}

// ListLocations returns every known location id.
func ListLocations(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		ids, err := svc.ListLocations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"locations": ids})
	}
}

// CreateLocation registers an empty location; repeat calls are no-ops.
func CreateLocation(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var req createLocationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateLocation(r.Context(), req.LocationID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		responses.WriteSuccessStatus(w, status, map[string]any{
			"location_id": req.LocationID,
			"created":     created,
		})
	}
}

// ListLocationItems returns the stocked items at one location.
func ListLocationItems(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		locationID, err := validators.ParsePathInt64(chi.URLParam(r, "locationID"), "locationID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithLocationID(ctx, locationID)
		}

		items, err := svc.ListItems(ctx, locationID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"location_id": locationID,
			"items":       items,
		})
	}
}
