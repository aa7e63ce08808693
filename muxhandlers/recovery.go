package muxhandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vitalvas/maskroute/mux"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the request and the
	// recovered value when a panic occurs.
	LogFunc func(r *http.Request, err any)

	// Logger, when set, receives an error record for every recovered panic
	// with the request method, path, request ID and stack trace.
	Logger *slog.Logger
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers. When a panic occurs it returns 500 Internal Server
// Error to the client and reports the panic to LogFunc and Logger.
func RecoveryMiddleware(cfg RecoveryConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				if cfg.LogFunc != nil {
					cfg.LogFunc(r, err)
				}

				if cfg.Logger != nil {
					cfg.Logger.ErrorContext(r.Context(), "muxhandlers: recovered panic",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", RequestIDFromContext(r.Context())),
						slog.String("panic", fmt.Sprint(err)),
						slog.String("stack", string(debug.Stack())),
					)
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
