package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jobseeker-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(Config{
		URL:          srv.URL,
		APIKey:       "anon-key",
		RedirectBase: "https://app.example.com",
	})
	return client, srv
}

func TestSignInWithPassword(t *testing.T) {
	t.Run("Success returns session", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a@b.com", body["email"])

			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "tok123",
				"refresh_token": "ref123",
				"token_type":    "bearer",
				"expires_in":    3600,
				"user":          map[string]any{"id": "uid1", "email": "a@b.com"},
			})
		}))
		defer srv.Close()

		session, err := client.SignInWithPassword(context.Background(), "a@b.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok123", session.AccessToken)
		assert.Equal(t, "uid1", session.User.ID)
	})

	t.Run("Provider error passes through status and message", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
		}))
		defer srv.Close()

		_, err := client.SignInWithPassword(context.Background(), "a@b.com", "wrong")
		require.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Equal(t, "Invalid login credentials", appErr.Message)
	})
}

func TestSignUp(t *testing.T) {
	t.Run("Pending confirmation has no session", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			opts, ok := body["options"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "https://app.example.com/auth/callback", opts["emailRedirectTo"])

			json.NewEncoder(w).Encode(map[string]any{"id": "uid1", "email": "a@b.com"})
		}))
		defer srv.Close()

		res, err := client.SignUp(context.Background(), "a@b.com", "secret", nil)
		require.NoError(t, err)
		assert.Equal(t, "uid1", res.User.ID)
		assert.Nil(t, res.Session)
	})

	t.Run("Auto-confirm returns session", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "tok123",
				"refresh_token": "ref123",
				"token_type":    "bearer",
				"expires_in":    3600,
				"user":          map[string]any{"id": "uid1", "email": "a@b.com"},
			})
		}))
		defer srv.Close()

		res, err := client.SignUp(context.Background(), "a@b.com", "secret", nil)
		require.NoError(t, err)
		require.NotNil(t, res.Session)
		assert.Equal(t, "tok123", res.Session.AccessToken)
		assert.Equal(t, "uid1", res.User.ID)
	})
}

func TestOAuthURL(t *testing.T) {
	client := New(Config{URL: "https://xyz.supabase.co", RedirectBase: "https://app.example.com"})

	u, err := client.OAuthURL("google")
	require.NoError(t, err)
	assert.Contains(t, u, "https://xyz.supabase.co/auth/v1/authorize?")
	assert.Contains(t, u, "provider=google")
	assert.Contains(t, u, "redirect_to=https%3A%2F%2Fapp.example.com%2Fauth%2Fcallback")

	_, err = client.OAuthURL("  ")
	assert.Error(t, err)
}

func TestSendPasswordReset(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		assert.Equal(t, "https://app.example.com/auth/update-password", r.URL.Query().Get("redirect_to"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := client.SendPasswordReset(context.Background(), "a@b.com")
	assert.NoError(t, err)
}

func TestUpdatePassword(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer recovery-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := client.UpdatePassword(context.Background(), "recovery-token", "newpass")
	assert.NoError(t, err)
}
