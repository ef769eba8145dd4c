package server

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/present"
)

type Options struct {
	Addr   string
	Bodies []catalog.Body
	Scene  present.Scene
	Hub    *Hub
	Static fs.FS
	Logger *slog.Logger
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	hub        *Hub
	bodies     []catalog.Body
	scene      present.Scene

	ctx    context.Context
	cancel context.CancelFunc
}

// New wires routes and middleware. Bodies and the scene are fixed for the
// life of the server.
func New(opts Options) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		logger: opts.Logger,
		hub:    opts.Hub,
		bodies: opts.Bodies,
		scene:  opts.Scene,
		ctx:    ctx,
		cancel: cancel,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", Healthz)
	mux.HandleFunc("GET /readyz", s.readyz)
	mux.Handle("GET /metrics", MetricsHandler())
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/bodies", s.handleBodies)
	mux.HandleFunc("GET /api/bodies/{name}", s.handleBody)
	mux.HandleFunc("GET /api/bodies/{name}/table", s.handleTable)
	mux.HandleFunc("GET /ws/frames", s.handleFrames)
	if opts.Static != nil {
		mux.Handle("GET /", http.FileServerFS(opts.Static))
	}

	// Build middleware chain: metrics -> logging -> mux.
	var handler http.Handler = mux
	handler = loggingMiddleware(opts.Logger)(handler)
	handler = metricsMiddleware(handler)

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown closes open frame streams, then drains HTTP requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.httpServer.Shutdown(ctx)
}

type bodySummary struct {
	Name          string  `json:"name"`
	Label         string  `json:"label"`
	Color         string  `json:"color"`
	DisplayRadius float64 `json:"displayRadius"`
	Central       bool    `json:"central,omitempty"`
}

type tableRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.scene)
}

func (s *Server) handleBodies(w http.ResponseWriter, r *http.Request) {
	out := make([]bodySummary, len(s.bodies))
	for i, b := range s.bodies {
		d, _ := catalog.Lookup(b.Name)
		out[i] = bodySummary{
			Name:          b.Name,
			Label:         d.Label,
			Color:         d.Color,
			DisplayRadius: b.DisplayRadius,
			Central:       b.Central(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBody(w http.ResponseWriter, r *http.Request) {
	body, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	body, ok := s.lookup(w, r)
	if !ok {
		return
	}

	rows := present.PropertyTable(body)
	out := make([]tableRow, len(rows))
	for i, row := range rows {
		out[i] = tableRow{Key: row.Key, Label: row.Label, Text: row.Text(), HTML: row.HTML()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (catalog.Body, bool) {
	name := r.PathValue("name")
	body, ok := catalog.Find(s.bodies, name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown body: " + name})
	}
	return body, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics"
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
