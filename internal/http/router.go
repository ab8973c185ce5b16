package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/common/metrics"
)

// Router uses the standard ServeMux; path parameters are cut from the URL by
// the handlers.
type Router struct {
	mux      *http.ServeMux
	logger   logger.Logger
	recorder Recorder
}

// Recorder receives one record per finished request. *observability.Observability
// implements it.
type Recorder interface {
	Record(ctx context.Context, operation, status string, duration time.Duration)
}

func NewRouter(log logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: log,
	}
}

// WithRecorder reports every routed request to rec as well as to the
// Prometheus histogram.
func (r *Router) WithRecorder(rec Recorder) *Router {
	r.recorder = rec
	return r
}

// Handle registers h for pattern, restricted to method. The pattern doubles
// as the route label of the request-duration histogram.
func (r *Router) Handle(pattern, method string, h http.HandlerFunc) {
	r.mux.Handle(pattern, r.instrument(pattern, methodOnly(method, h)))
}

// HandleHandler registers a plain http.Handler (probes, /metrics).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	LocaleMiddleware(r.mux).ServeHTTP(w, req)
}

func methodOnly(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (r *Router) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		elapsed := time.Since(start)
		status := strconv.Itoa(rec.status)
		metrics.HTTPRequestDuration.WithLabelValues(route, req.Method, status).Observe(elapsed.Seconds())
		if r.recorder != nil {
			r.recorder.Record(req.Context(), req.Method+" "+route, status, elapsed)
		}
	})
}
