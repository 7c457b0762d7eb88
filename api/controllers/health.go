package controllers

import (
	"net/http"

	"github.com/locofly/inventory-backend/api/responses"
	"github.com/locofly/inventory-backend/pkg/config"
	"github.com/locofly/inventory-backend/pkg/db"
	pkgerrors "github.com/locofly/inventory-backend/pkg/errors"
	"github.com/locofly/inventory-backend/pkg/logger"
	"github.com/locofly/inventory-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Locofly-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis. redisClient may
// be nil.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Locofly-Env", cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not wired"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}

		deps := map[string]string{"db": "ok"}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
			deps["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "deps": deps})
	}
}
