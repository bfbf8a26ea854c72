package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agrimarket-delivery/internal/http/handlers"
	mw "agrimarket-delivery/internal/http/middleware"
	"agrimarket-delivery/internal/logx"
	"agrimarket-delivery/internal/metrics"
)

// Deps groups everything the router mounts.
type Deps struct {
	Logger        logx.Logger
	Metrics       *metrics.HTTP
	MetricsSource http.Handler
	Auth          func(http.Handler) http.Handler
	RateLimit     func(http.Handler) http.Handler

	Base          *handlers.Handlers
	Schedules     *handlers.ScheduleHandler
	OrderSchedule *handlers.OrderScheduleHandler
	TruckBan      *handlers.TruckBanHandler
}

// New constructs the chi router. Everything except ping, healthcheck and metrics requires a bearer token.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))
	if d.Logger != nil {
		r.Use(mw.Observability(d.Logger, d.Metrics))
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	metricsHandler := d.MetricsSource
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		if d.Auth != nil {
			r.Use(d.Auth)
		}
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}

		r.Route("/delivery-schedule", func(r chi.Router) {
			r.Post("/", d.Schedules.Propose)
			r.Get("/", d.Schedules.List)
			r.Post("/{id}/confirm", d.Schedules.Respond)
		})
		r.Route("/orders/{id}/schedule", func(r chi.Router) {
			r.Patch("/", d.OrderSchedule.Update)
			r.Get("/", d.OrderSchedule.Get)
		})
		r.Route("/truck-ban", func(r chi.Router) {
			r.Get("/windows", d.TruckBan.Windows)
			r.Post("/validate", d.TruckBan.Validate)
			r.Get("/penalty", d.TruckBan.Penalty)
		})
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)
	return r
}
