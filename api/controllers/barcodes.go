package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/locofly/inventory-backend/api/responses"
	"github.com/locofly/inventory-backend/internal/barcode"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/logger"
)

// ListBarcodes returns the read-only barcode master list.
func ListBarcodes(svc barcode.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "barcode service unavailable"))
			return
		}

		mappings, err := svc.ListMappings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"barcodes": mappings})
	}
}

// ResolveBarcode is the picker lookup: code in, item plus its locations out.
func ResolveBarcode(svc barcode.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "barcode service unavailable"))
			return
		}

		resolution, err := svc.Resolve(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resolution)
	}
}
