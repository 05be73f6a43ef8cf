package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-jobseeker-backend/pkg/apperror"
)

// Config holds everything the auth client needs. RedirectBase is the frontend
// origin used to build email-confirmation and password-reset redirect URLs;
// it must be passed explicitly, the client never reads ambient state.
type Config struct {
	URL          string // Project URL, e.g. https://xyz.supabase.co
	APIKey       string // anon key, sent as the apikey header
	RedirectBase string // e.g. https://app.example.com
	Timeout      time.Duration
}

// Client talks to the Supabase GoTrue REST API. It is a pass-through facade:
// provider errors are returned to the caller unmodified (as *apperror.AppError
// carrying the provider's status and message), with no retry and no
// translation. The client holds no session state.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	cfg.RedirectBase = strings.TrimRight(cfg.RedirectBase, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthUser is the provider's view of an account
type AuthUser struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
}

// Session is the token bundle returned by password sign-in (and by sign-up
// when the project auto-confirms emails)
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// SignUpResult carries the created user plus the session when the email was
// auto-confirmed; Session is nil when confirmation is pending.
type SignUpResult struct {
	User    AuthUser
	Session *Session
}

// SignUp registers a new account. The confirmation email links back to
// RedirectBase + "/auth/callback".
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*SignUpResult, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		body["data"] = metadata
	}
	if c.cfg.RedirectBase != "" {
		body["options"] = map[string]any{
			"emailRedirectTo": c.cfg.RedirectBase + "/auth/callback",
		}
	}

	// The signup response is the user object; access_token is present only
	// when the project auto-confirms emails.
	var raw struct {
		AuthUser
		Session
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, "", body, &raw); err != nil {
		return nil, err
	}

	res := &SignUpResult{User: raw.AuthUser}
	if raw.AccessToken != "" {
		s := raw.Session
		if s.User.ID == "" {
			s.User = raw.AuthUser
		}
		res.User = s.User
		res.Session = &s
	}
	return res, nil
}

// SignInWithPassword exchanges email/password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	query := url.Values{"grant_type": {"password"}}
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut revokes the session behind the given access token
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil)
}

// GetUser fetches the account behind the given access token
func (c *Client) GetUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	var user AuthUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// OAuthURL builds the authorize URL the frontend should redirect the browser
// to for the given provider (google, github, linkedin_oidc, ...). No network
// call is made; the provider handles the rest of the flow.
func (c *Client) OAuthURL(provider string) (string, error) {
	if strings.TrimSpace(provider) == "" {
		return "", apperror.BadRequest("OAuth provider is required")
	}
	q := url.Values{"provider": {provider}}
	if c.cfg.RedirectBase != "" {
		q.Set("redirect_to", c.cfg.RedirectBase+"/auth/callback")
	}
	return c.cfg.URL + "/auth/v1/authorize?" + q.Encode(), nil
}

// SendPasswordReset asks the provider to email a recovery link. The link
// redirects to RedirectBase + "/auth/update-password".
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	var query url.Values
	if c.cfg.RedirectBase != "" {
		query = url.Values{"redirect_to": {c.cfg.RedirectBase + "/auth/update-password"}}
	}
	body := map[string]any{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", query, "", body, nil)
}

// UpdatePassword sets a new password for the account behind the access token
// (typically the short-lived token from a recovery link).
func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	body := map[string]any{"password": newPassword}
	return c.do(ctx, http.MethodPut, "/auth/v1/user", nil, accessToken, body, nil)
}

// do executes one request against GoTrue. A non-2xx response becomes an
// *apperror.AppError with the provider's status code and message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.cfg.URL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.Internal(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperror.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.APIKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.New(http.StatusBadGateway, "Auth service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return providerError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperror.New(http.StatusInternalServerError, "Failed to parse auth response", err)
		}
	}
	return nil
}

// providerError extracts GoTrue's error message. GoTrue is inconsistent about
// the field name across endpoints, so try the known variants.
func providerError(resp *http.Response) *apperror.AppError {
	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	msg := fmt.Sprintf("Auth provider error (status %d)", resp.StatusCode)
	for _, key := range []string{"msg", "message", "error_description", "error"} {
		if m, ok := payload[key].(string); ok && m != "" {
			msg = m
			break
		}
	}
	return apperror.New(resp.StatusCode, msg, nil)
}
