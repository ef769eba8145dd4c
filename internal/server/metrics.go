package server

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orrery_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"route", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orrery_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	framesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_frames_total",
		Help: "Frames published to stream clients.",
	})

	framesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_frames_dropped_total",
		Help: "Frames skipped for clients whose buffer was full.",
	})

	streamClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_stream_clients",
		Help: "Connected frame stream clients.",
	})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(framesTotal)
	prometheus.MustRegister(framesDropped)
	prometheus.MustRegister(streamClients)
}

// MetricsHandler returns the Prometheus metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// Hijack passes through so websocket upgrades work behind the middleware.
func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("server: response writer cannot hijack")
	}
	sr.statusCode = http.StatusSwitchingProtocols
	return h.Hijack()
}

// route labels a request by the mux pattern that served it so that body
// names do not explode the label set.
func route(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return "unmatched"
}

// metricsMiddleware records request count and duration for each request.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(sr, r)

		httpRequestsTotal.WithLabelValues(route(r), r.Method, strconv.Itoa(sr.statusCode)).Inc()
		httpDurationSeconds.WithLabelValues(route(r), r.Method).Observe(time.Since(start).Seconds())
	})
}
