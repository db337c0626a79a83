package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"task-tracker/core"
	"task-tracker/pkg/res"
)

func NewPingHandler(log *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Warn("ping failed", "error", err)
			res.Json(w, map[string]string{"storage": "down"}, http.StatusServiceUnavailable)
			return
		}
		res.Json(w, map[string]string{"storage": "ok"}, http.StatusOK)
	}
}
