package client

import (
	"context"
	"net/http"
	"sync"
)

// AnonymousAuth is the unauthenticated state: everything persists to the
// local fallback only.
type AnonymousAuth struct{}

func (AnonymousAuth) IsAuthenticated() bool                 { return false }
func (AnonymousAuth) IsLoading() bool                       { return false }
func (AnonymousAuth) Token(context.Context) (string, error) { return "", nil }
func (AnonymousAuth) SignOut(context.Context) error         { return nil }

// TokenAuth wraps an externally obtained bearer token (identity-provider
// session). Signing out clears it.
type TokenAuth struct {
	mu    sync.Mutex
	token string
}

// NewTokenAuth builds an authenticated collaborator from a bearer token.
func NewTokenAuth(token string) *TokenAuth {
	return &TokenAuth{token: token}
}

func (a *TokenAuth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != ""
}

func (a *TokenAuth) IsLoading() bool { return false }

func (a *TokenAuth) Token(context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token, nil
}

func (a *TokenAuth) SignOut(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	return nil
}

// PasswordAuth logs into the backend's auth endpoints and holds the issued
// access token for the lifetime of the process.
type PasswordAuth struct {
	mu       sync.Mutex
	baseURL  string
	httpc    *http.Client
	username string
	password string
	token    string
	loading  bool
}

// NewPasswordAuth builds a collaborator that signs in lazily on the first
// Token call.
func NewPasswordAuth(baseURL, username, password string, httpc *http.Client) *PasswordAuth {
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	return &PasswordAuth{
		baseURL:  baseURL,
		httpc:    httpc,
		username: username,
		password: password,
	}
}

func (a *PasswordAuth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token != "" || a.username != ""
}

func (a *PasswordAuth) IsLoading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Token returns the cached access token, signing in first when needed.
func (a *PasswordAuth) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	if a.token != "" {
		token := a.token
		a.mu.Unlock()
		return token, nil
	}
	a.loading = true
	a.mu.Unlock()

	token, err := a.login(ctx)

	a.mu.Lock()
	a.loading = false
	if err == nil {
		a.token = token
	}
	a.mu.Unlock()
	return token, err
}

func (a *PasswordAuth) login(ctx context.Context) (string, error) {
	login := NewAPIClient(a.baseURL, AnonymousAuth{}, a.httpc)
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"username": a.username, "password": a.password}
	if err := login.do(ctx, http.MethodPost, "/v1/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// SignOut drops the cached token and credentials.
func (a *PasswordAuth) SignOut(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.username = ""
	a.password = ""
	return nil
}
