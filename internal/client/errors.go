package client

import (
	"fmt"
	"net/http"

	"swiftdoc/internal/domain"
)

// APIError is a backend rejection: the request reached the service and was
// refused. Detail carries whatever the RFC 7807 body said.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.Status)
}

// Is lets 401 rejections match domain.ErrUnauthorized with errors.Is(),
// so callers can redirect to login without inspecting status codes.
func (e *APIError) Is(target error) bool {
	if target == domain.ErrUnauthorized {
		return e.Status == http.StatusUnauthorized
	}
	if target == domain.ErrNotFound {
		return e.Status == http.StatusNotFound
	}
	return false
}
