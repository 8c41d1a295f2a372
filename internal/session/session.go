// Package session owns the process-wide session token: set once on login,
// read by every authenticated request, cleared on logout. The holder is an
// injected dependency, never a package-level global.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Holder is a thread-safe container for the backend-issued session token.
// It satisfies api.TokenSource.
type Holder struct {
	mu    sync.RWMutex
	token string
}

func NewHolder() *Holder { return &Holder{} }

func (h *Holder) Set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) Clear() {
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
}

func (h *Holder) Active() bool { return h.Token() != "" }

// ExpiresAt peeks at the token's exp claim without verifying the signature
// (the client has no key material; the backend is the authority). Returns
// false when the token is not a JWT or carries no expiry.
func ExpiresAt(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token is a JWT that has already expired.
// Non-JWT tokens are never considered expired here; the backend decides.
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return exp.Before(now)
}
