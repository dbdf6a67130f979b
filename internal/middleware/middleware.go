package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sanchara/sanchara/internal/logging"
	"go.uber.org/zap"
)

type Middleware = func(http.Handler) http.Handler

func InjectLogger(lg *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := r.WithContext(logging.WithLogger(r.Context(), lg))
			next.ServeHTTP(w, req)
		})
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger(lg *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				fields := []zap.Field{
					zap.Int("status", ww.Status()),
					zap.String("method", r.Method),
					zap.String("query", r.URL.RawQuery),
					zap.String("ip", r.RemoteAddr),
					zap.Duration("latency", time.Since(start)),
				}
				if ww.Status() >= http.StatusInternalServerError {
					lg.Error(r.URL.Path, fields...)
				} else {
					lg.Info(r.URL.Path, fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
