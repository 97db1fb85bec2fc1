package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openhuddle/huddle/internal/adapter/driven/gateway/ws"
	"github.com/openhuddle/huddle/internal/core/domain"
	"github.com/openhuddle/huddle/internal/core/service"
	"github.com/openhuddle/huddle/internal/metrics"
)

// Options carries the handler's static configuration.
type Options struct {
	IndexPath string
	Debug     bool
	AccessLog io.Writer // nil disables the access log
}

type Handler struct {
	sessions  *service.SessionService
	hub       *ws.Hub
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
	opts      Options
	startTime time.Time
}

func NewHandler(sessions *service.SessionService, hub *ws.Hub, m *metrics.Metrics, gatherer prometheus.Gatherer, opts Options) *Handler {
	return &Handler{
		sessions:  sessions,
		hub:       hub,
		metrics:   m,
		gatherer:  gatherer,
		opts:      opts,
		startTime: time.Now(),
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if h.opts.AccessLog != nil {
		r.Use(AccessLog(h.opts.AccessLog))
	}
	r.Use(h.recordMetrics)
	if h.opts.Debug {
		r.Use(middleware.Logger)
	}

	r.Get("/", h.handleIndex)
	r.Post("/join", h.handleJoin)
	r.Post("/end", h.handleEnd)
	r.Get("/events", h.ServeEvents)
	r.Get("/healthz", h.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	if h.opts.Debug {
		r.Get("/debug/sessions", h.handleDebugSessions)
	}

	notFound := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, h.opts.IndexPath)
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	info, err := h.sessions.Join(r.Context(), q.Get("title"), q.Get("name"), q.Get("region"))
	if err != nil {
		writeError(w, err)
		return
	}

	h.metrics.AttendeesJoined.Inc()
	if info.Created {
		h.metrics.MeetingsCreated.Inc()
		h.metrics.LiveMeetings.Inc()
	}

	writeJSON(w, http.StatusCreated, map[string]domain.JoinInfo{"JoinInfo": info})
}

func (h *Handler) handleEnd(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(r.Context(), r.URL.Query().Get("title")); err != nil {
		writeError(w, err)
		return
	}

	h.metrics.MeetingsEnded.Inc()
	h.metrics.LiveMeetings.Dec()

	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
		"live_meetings":  len(h.sessions.Sessions(r.Context())),
	})
}

func (h *Handler) handleDebugSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.Sessions(r.Context()))
}

// recordMetrics counts every request against the matched chi route pattern.
func (h *Handler) recordMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		h.metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForKind(domain.KindOf(err)), map[string]string{"error": err.Error()})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
