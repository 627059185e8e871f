package httputil

import (
	"context"
	"net/http"
)

// Unexported key type so other packages cannot collide with our context values.
type contextKey string

const userIDKey contextKey = "swiftdoc.userID"

// WithUserID returns a copy of the request whose context carries the
// authenticated user's id. Set by the auth middleware.
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
}

// GetUserID returns the authenticated user's id from the request context,
// or "" when the request never passed through the auth middleware.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
