package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/simplytrees/bacqyard-bridge/api/responses"
	"github.com/simplytrees/bacqyard-bridge/pkg/config"
	"github.com/simplytrees/bacqyard-bridge/pkg/db"
	pkgerrors "github.com/simplytrees/bacqyard-bridge/pkg/errors"
	"github.com/simplytrees/bacqyard-bridge/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bridge-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bridge-Env", cfg.App.Env)

		if dbP != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
