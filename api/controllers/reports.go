package controllers

import (
	"net/http"
	"strings"

	"github.com/locofly/inventory-backend/api/responses"
	"github.com/locofly/inventory-backend/api/validators"
	"github.com/locofly/inventory-backend/internal/inventory"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/logger"
)

const maxShortageThreshold = 1_000_000

// ShortageReport lists items at or below the threshold, scarcest first.
func ShortageReport(svc inventory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}

		var threshold *int
		if raw := strings.TrimSpace(r.URL.Query().Get("threshold")); raw != "" {
			value, err := validators.ParseQueryInt(r, "threshold", 0, 0, maxShortageThreshold)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			threshold = &value
		}

		rows, err := svc.ShortageReport(r.Context(), threshold)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"shortages": rows})
	}
}
