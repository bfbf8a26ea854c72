package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotificationRetriesTotal counts publish attempts repeated after a transient failure.
func NewNotificationRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_publish_retries_total",
		Help: "Total number of retried notification publish attempts",
	})
}

// NewNotificationFailuresTotal counts notification tasks that could not be published.
func NewNotificationFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notification_publish_failures_total",
		Help: "Total number of notification tasks that were dropped after publishing failed",
	})
}

// Proposal outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeViolation = "violation"
	OutcomeConflict  = "conflict"
)

// Schedule records negotiation and compliance counters.
type Schedule struct {
	proposals  *prometheus.CounterVec
	violations *prometheus.CounterVec
}

// NewSchedule creates the negotiation counters. Register them with Collectors.
func NewSchedule() *Schedule {
	return &Schedule{
		proposals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_schedule_proposals_total",
			Help: "Delivery schedule proposals by outcome",
		}, []string{"outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "truckban_violations_total",
			Help: "Schedules rejected for falling inside a truck ban window, by zone",
		}, []string{"zone"}),
	}
}

// Collectors returns everything that needs registering.
func (m *Schedule) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.proposals, m.violations}
}

func (m *Schedule) Proposal(outcome string) {
	if m == nil {
		return
	}
	m.proposals.WithLabelValues(outcome).Inc()
}

func (m *Schedule) Violation(zone string) {
	if m == nil {
		return
	}
	m.violations.WithLabelValues(zone).Inc()
}

// HTTP holds request counters and latency histograms labelled by route pattern.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewHTTP() *HTTP {
	return &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Requests, m.Duration}
}
