package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/skavtech/ict-platform/pkg/logger"
)

// Logging logs HTTP requests with structured logging
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		ww := &StatusRecorder{ResponseWriter: w, StatusCode: http.StatusOK}

		logger.Debug(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Msg("HTTP request started")

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		event := logger.Info(ctx)
		if ww.StatusCode >= http.StatusInternalServerError {
			event = logger.Error(ctx)
		} else if ww.StatusCode >= http.StatusBadRequest {
			event = logger.Warn(ctx)
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.StatusCode).
			Dur("duration", duration).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("HTTP request completed")
	})
}

// Tracing wraps HTTP handlers with OpenTelemetry tracing
func Tracing(operationName string, next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, operationName)
}

// StatusRecorder wraps http.ResponseWriter to capture status code
type StatusRecorder struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.StatusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
