package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx backend response. Body keeps the raw error body so
// callers that care (register, google login) can show or inspect it.
type Error struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *Error) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	if len(body) > 200 {
		body = body[:200] + "…"
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, body)
}

// IsStatus reports whether err is a backend error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == status
}

// StatusOf returns the HTTP status of a backend error, or 0 for transport
// faults and nil errors.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// IsUserNotFound reports whether err is the backend's unknown-account
// response: an HTTP 404, or any backend error whose body carries the
// USER_NOT_FOUND token (some backend versions report the google-login miss
// that way under a different status).
func IsUserNotFound(err error) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusNotFound || strings.Contains(ae.Body, "USER_NOT_FOUND")
}
