package handlers

import (
	"context"
	"net/http"
	"time"

	"agrimarket-delivery/internal/logx"
)

const healthcheckTimeout = time.Second

// Handlers serves the unauthenticated service endpoints.
type Handlers struct {
	Logger logx.Logger
	db     pinger
}

// New returns the base handlers. With a nil db the healthcheck only reports liveness.
func New(logger logx.Logger, db pinger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, db: db}
}

// Ping handles GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck: 204 when Postgres answers, 503 otherwise.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.Logger.Warn("healthcheck failed",
				logx.String("event", "healthcheck_failed"),
				logx.String("request_id", reqID(r.Context())),
				logx.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
