// Package api serves the shape registry and the design store over HTTP.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// ANSI escape codes for cyan and reset
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// RequestIDHeader carries the per-request UUID.
const RequestIDHeader = "X-Request-ID"

type Server struct {
	registry  *shapes.Registry
	store     designs.Store
	storeKind string

	// ChartAssetsHost overrides where chart pages load echarts from.
	ChartAssetsHost string
}

// NewServer wires the registry and a design store. storeKind names the
// backend ("file" or "sqlite") and is reported by /api/config.
func NewServer(registry *shapes.Registry, store designs.Store, storeKind string) *Server {
	return &Server{
		registry:  registry,
		store:     store,
		storeKind: storeKind,
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware tags each request with an X-Request-ID (reusing a valid
// incoming one) and logs status, method, URI and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s%s%s %vms id=%s",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6, id,
		)
	})
}

// ServeMux returns the API routes. Wrap it in LoggingMiddleware when serving.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/models", s.listModels)
	mux.HandleFunc("/api/models/", s.modelRoutes)
	mux.HandleFunc("/api/save-design", s.saveDesign)
	mux.HandleFunc("/api/load-design/", s.loadDesign)
	mux.HandleFunc("/api/list-designs", s.listDesigns)
	mux.HandleFunc("/api/charts/", s.showChart)
	mux.HandleFunc("/api/plots/", s.showPlot)
	mux.HandleFunc("/api/exports/", s.exportASC)
	mux.HandleFunc("/api/config", s.showConfig)
	return mux
}

// allowGet rejects anything but GET and HEAD.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	writeMethodNotAllowed(w, http.MethodGet, http.MethodHead)
	return false
}
