// Package identity obtains a Google identity token through the OAuth
// authorization-code flow with a loopback redirect. It is independent of the
// ProSync transport client: the token it yields is handed to the backend's
// google-login endpoint by the caller.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingSelection
	StateResolvedToken
	StateResolvedError
)

// Result is the outcome of one sign-in attempt. ErrorMessage is set instead
// of returning an error for every provider-side failure; only cancellation
// of the in-flight wait propagates as an error.
type Result struct {
	IDToken      string
	DisplayName  string
	AccountID    string
	ErrorMessage string
}

type callback struct {
	code  string
	state string
	err   error
}

// Flow runs one sign-in attempt. A fresh attempt requires a fresh Begin from
// idle; there is no retry inside the flow.
type Flow struct {
	cfg *oauth2.Config

	mu    sync.Mutex
	state State

	listener net.Listener
	server   *http.Server
	nonce    string
	cb       chan callback

	// exchange is swappable in tests.
	exchange func(ctx context.Context, code string) (*oauth2.Token, error)
}

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

func NewFlow(clientID, clientSecret string) *Flow {
	f := &Flow{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     googleEndpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		state: StateIdle,
	}
	f.exchange = func(ctx context.Context, code string) (*oauth2.Token, error) {
		return f.cfg.Exchange(ctx, code)
	}
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Begin starts a loopback listener and returns the provider URL the user
// must open to pick an account. Transitions idle -> awaiting-user-selection.
func (f *Flow) Begin(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateAwaitingSelection {
		return "", errors.New("sign-in already in progress")
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("loopback listener: %w", err)
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		_ = ln.Close()
		return "", err
	}
	f.nonce = hex.EncodeToString(raw)
	f.cb = make(chan callback, 1)
	f.listener = ln
	f.cfg.RedirectURL = fmt.Sprintf("http://%s/callback", ln.Addr().String())

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if e := q.Get("error"); e != "" {
			select {
			case f.cb <- callback{err: fmt.Errorf("provider error: %s", e)}:
			default:
			}
			http.Error(w, "Inicio de sesión cancelado. Puedes cerrar esta pestaña.", http.StatusOK)
			return
		}
		select {
		case f.cb <- callback{code: q.Get("code"), state: q.Get("state")}:
		default:
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = fmt.Fprintln(w, "Sesión iniciada. Vuelve a la terminal.")
	})
	f.server = &http.Server{Handler: mux}
	go func() { _ = f.server.Serve(ln) }()

	f.state = StateAwaitingSelection
	return f.cfg.AuthCodeURL(f.nonce), nil
}

// Wait blocks until the provider redirects back (or ctx is cancelled),
// exchanges the code, and extracts the identity token. Provider failures are
// folded into Result.ErrorMessage; only cancellation returns a non-nil error
// so the caller's cancellation semantics apply.
func (f *Flow) Wait(ctx context.Context) (Result, error) {
	defer f.shutdown()

	select {
	case <-ctx.Done():
		f.setState(StateResolvedError)
		return Result{}, ctx.Err()
	case cb := <-f.cb:
		return f.resolve(ctx, cb)
	}
}

func (f *Flow) resolve(ctx context.Context, cb callback) (Result, error) {
	fail := func(msg string) (Result, error) {
		f.setState(StateResolvedError)
		return Result{ErrorMessage: msg}, nil
	}

	if cb.err != nil {
		return fail(cb.err.Error())
	}
	if cb.state != f.nonce {
		return fail("state mismatch in provider callback")
	}
	if cb.code == "" {
		return fail("provider callback carried no code")
	}

	tok, err := f.exchange(ctx, cb.code)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			f.setState(StateResolvedError)
			return Result{}, err
		}
		return fail("token exchange failed: " + err.Error())
	}

	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return fail("no Google ID token found")
	}

	res := Result{IDToken: idToken}
	res.DisplayName, res.AccountID = claimsOf(idToken)
	f.setState(StateResolvedToken)
	return res, nil
}

// claimsOf reads display name and account id from the (unverified) id token;
// the backend re-verifies it, the client only needs display data.
func claimsOf(idToken string) (name, account string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return "", ""
	}
	if v, ok := claims["name"].(string); ok {
		name = v
	}
	if v, ok := claims["email"].(string); ok && name == "" {
		name = v
	}
	if v, ok := claims["sub"].(string); ok {
		account = v
	}
	return name, account
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *Flow) shutdown() {
	f.mu.Lock()
	srv := f.server
	f.server = nil
	f.listener = nil
	f.mu.Unlock()
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
