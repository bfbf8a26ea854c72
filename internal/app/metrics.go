package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"agrimarket-delivery/internal/metrics"
)

type metricsOut struct {
	dig.Out

	Registry       *prometheus.Registry
	Handler        http.Handler `name:"metrics_handler"`
	HTTP           *metrics.HTTP
	Schedule       *metrics.Schedule
	RateLimited    prometheus.Counter `name:"rate_limit_exceeded_total"`
	NotifyRetries  prometheus.Counter `name:"notification_publish_retries_total"`
	NotifyFailures prometheus.Counter `name:"notification_publish_failures_total"`
}

// newMetrics registers every collector on a private registry so tests can build containers side by side.
func newMetrics() (metricsOut, error) {
	out := metricsOut{
		Registry:       prometheus.NewRegistry(),
		HTTP:           metrics.NewHTTP(),
		Schedule:       metrics.NewSchedule(),
		RateLimited:    metrics.NewRateLimitExceededTotal(),
		NotifyRetries:  metrics.NewNotificationRetriesTotal(),
		NotifyFailures: metrics.NewNotificationFailuresTotal(),
	}

	all := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		out.RateLimited,
		out.NotifyRetries,
		out.NotifyFailures,
	}
	all = append(all, out.HTTP.Collectors()...)
	all = append(all, out.Schedule.Collectors()...)
	for _, c := range all {
		if err := out.Registry.Register(c); err != nil {
			return metricsOut{}, fmt.Errorf("register metrics: %w", err)
		}
	}

	out.Handler = promhttp.HandlerFor(out.Registry, promhttp.HandlerOpts{Registry: out.Registry})
	return out, nil
}
