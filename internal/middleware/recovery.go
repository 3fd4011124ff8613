package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler renders the response for a request that panicked.
type PanicHandler func(w http.ResponseWriter, r *http.Request, err any)

// Recovery turns handler panics into logged errors so one bad request
// cannot take the server down. The panic handler decides what the client
// sees.
func Recovery(logger *slog.Logger, handler PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
					)
					handler(w, r, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
