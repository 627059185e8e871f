package middleware

import (
	"net/http"
	"strings"

	"swiftdoc/internal/auth"
	"swiftdoc/internal/httputil"
)

// Auth validates the bearer token on every request except the exempt paths
// (registration, login, health checks) and stores the authenticated user id
// in the request context.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.Subject))
		})
	}
}

func isExempt(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/auth/")
}
