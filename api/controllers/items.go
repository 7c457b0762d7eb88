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

type setQuantityRequest struct {
	Quantity int     `json:"quantity" validate:"min=0"`
	Barcode  *string `json:"barcode,omitempty" validate:"omitempty,min=1,max=64"`
	Note     *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type adjustQuantityRequest struct {
	Delta int     `json:"delta" validate:"required"`
	Note  *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func itemPathParams(r *http.Request) (int64, string, error) {
	locationID, err := validators.ParsePathInt64(chi.URLParam(r, "locationID"), "locationID")
	if err != nil {
		return 0, "", err
	}
	itemName := chi.URLParam(r, "itemName")
	if itemName == "" {
		return 0, "", pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	return locationID, itemName, nil
}

// SetItemQuantity writes an absolute quantity for one item at one location.
func SetItemQuantity(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		locationID, itemName, err := itemPathParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req setQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithLocationID(ctx, locationID)
			ctx = logg.WithItemName(ctx, itemName)
		}

		result, err := svc.SetQuantity(ctx, inventory.SetQuantityInput{
			LocationID: locationID,
			ItemName:   itemName,
			Quantity:   req.Quantity,
			Barcode:    req.Barcode,
			Note:       req.Note,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdjustItemQuantity applies a relative delta, flooring the result at zero.
func AdjustItemQuantity(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		locationID, itemName, err := itemPathParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req adjustQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithLocationID(ctx, locationID)
			ctx = logg.WithItemName(ctx, itemName)
		}

		result, err := svc.AdjustQuantity(ctx, inventory.AdjustQuantityInput{
			LocationID: locationID,
			ItemName:   itemName,
			Delta:      req.Delta,
			Note:       req.Note,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DeleteItem removes one item from one location. Deleting a missing item
// still returns success; the response reports whether anything was removed.
func DeleteItem(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		locationID, itemName, err := itemPathParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithLocationID(ctx, locationID)
			ctx = logg.WithItemName(ctx, itemName)
		}

		result, err := svc.DeleteItem(ctx, inventory.DeleteItemInput{
			LocationID: locationID,
			ItemName:   itemName,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ItemLocations returns every location holding the item, most recently
// touched first.
func ItemLocations(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		itemName := chi.URLParam(r, "itemName")

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithItemName(ctx, itemName)
		}

		locations, err := svc.FindLocationsForItem(ctx, itemName)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"item_name": itemName,
			"locations": locations,
		})
	}
}
