// Package repo wraps the transport client with domain-shaped operations.
// Repositories are thin pass-throughs with no retries or backoff; every
// failure goes straight back to the caller, which owns its presentation.
package repo

import (
	"context"

	"prosync-cli/internal/api"
)

type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	GoogleLogin(ctx context.Context, req api.GoogleLoginRequest) (api.AuthResponse, error)
	Profile(ctx context.Context) (api.User, error)
}

type Auth struct {
	api AuthAPI
}

func NewAuth(a AuthAPI) *Auth { return &Auth{api: a} }

func (r *Auth) Login(ctx context.Context, username, password string) (api.AuthResponse, error) {
	return r.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
}

// Register surfaces the backend's error body verbatim on failure; callers
// show it as the user-facing message.
func (r *Auth) Register(ctx context.Context, username, email, password string) error {
	return r.api.Register(ctx, api.RegisterRequest{Username: username, Email: email, Password: password})
}

func (r *Auth) Profile(ctx context.Context) (api.User, error) {
	return r.api.Profile(ctx)
}

// LoginWithGoogle exchanges an identity-provider token for a session.
// username is only set when completing first-time registration after the
// backend reported the account unknown (404).
func (r *Auth) LoginWithGoogle(ctx context.Context, token string, username *string) (api.AuthResponse, error) {
	return r.api.GoogleLogin(ctx, api.GoogleLoginRequest{Token: token, Username: username})
}
