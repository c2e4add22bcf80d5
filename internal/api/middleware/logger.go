package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

const logFieldsKey ContextKey = "logFields"

// logFields collects handler supplied fields for the request log line
type logFields struct {
	mu     sync.Mutex
	values map[string]interface{}
}

// AddLogField adds a field to the request log line. It is a no-op outside
// the Logger middleware.
func AddLogField(r *http.Request, key string, value interface{}) {
	lf, ok := r.Context().Value(logFieldsKey).(*logFields)
	if !ok {
		return
	}
	lf.mu.Lock()
	lf.values[key] = value
	lf.mu.Unlock()
}

// Logger returns a middleware that logs HTTP requests. Client errors are
// logged at warn level and server errors at error level.
func Logger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			extra := &logFields{values: make(map[string]interface{})}

			next.ServeHTTP(wrapped, r.WithContext(context.WithValue(r.Context(), logFieldsKey, extra)))

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"status":      wrapped.statusCode,
				"duration_ms": time.Since(start).Milliseconds(),
				"bytes":       wrapped.written,
				"ip":          r.RemoteAddr,
				"user_agent":  r.UserAgent(),
				"request_id":  GetRequestID(r),
			}
			extra.mu.Lock()
			for k, v := range extra.values {
				fields[k] = v
			}
			extra.mu.Unlock()

			entry := log.WithFields(fields)
			switch {
			case wrapped.statusCode >= http.StatusInternalServerError:
				entry.Error("HTTP request")
			case wrapped.statusCode >= http.StatusBadRequest:
				entry.Warn("HTTP request")
			default:
				entry.Info("HTTP request")
			}
		})
	}
}
