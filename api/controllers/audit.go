package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/locofly/inventory-backend/api/responses"
	"github.com/locofly/inventory-backend/api/validators"
	"github.com/locofly/inventory-backend/internal/audit"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/logger"
	"github.com/locofly/inventory-backend/pkg/pagination"
)

// AuditHistory returns the audit trail, newest first, cursor-paginated.
func AuditHistory(svc audit.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "audit service unavailable"))
			return
		}

		input := audit.HistoryInput{
			ItemName: strings.TrimSpace(r.URL.Query().Get("item")),
		}

		locationID, err := validators.ParseQueryInt(r, "location_id", 0, 0, int(^uint(0)>>1))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.LocationID = int64(locationID)

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.Pagination = pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("since")); raw != "" {
			ts, parseErr := time.Parse(time.RFC3339, raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid since timestamp"))
				return
			}
			input.Since = ts
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("until")); raw != "" {
			ts, parseErr := time.Parse(time.RFC3339, raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid until timestamp"))
				return
			}
			input.Until = ts
		}

		page, err := svc.History(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
