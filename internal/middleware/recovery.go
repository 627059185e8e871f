package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"swiftdoc/internal/httputil"
)

// Recovery turns a handler panic into a logged 500 problem response instead
// of a dropped connection. Outermost middleware after CORS, so it also covers
// panics in the auth layer.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.Error("panic recovered",
					"panic", v,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
