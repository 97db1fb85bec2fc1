package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus instrumentation for the session broker.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	MeetingsCreated prometheus.Counter
	MeetingsEnded   prometheus.Counter
	AttendeesJoined prometheus.Counter
	LiveMeetings    prometheus.Gauge
}

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "huddle_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "huddle_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		MeetingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "huddle_meetings_created_total",
			Help: "Meetings provisioned on the control plane",
		}),
		MeetingsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "huddle_meetings_ended_total",
			Help: "Meetings torn down via the end endpoint",
		}),
		AttendeesJoined: factory.NewCounter(prometheus.CounterOpts{
			Name: "huddle_attendees_joined_total",
			Help: "Attendee grants minted",
		}),
		LiveMeetings: factory.NewGauge(prometheus.GaugeOpts{
			Name: "huddle_live_meetings",
			Help: "Meetings currently tracked by the session store",
		}),
	}
}
