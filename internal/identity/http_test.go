package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
)

func newTestProvider(t *testing.T, handler http.Handler) Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	provider, err := NewHTTPProvider(config.Identity{
		BaseURL:        srv.URL,
		APIKey:         "anon-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return provider
}

func TestHTTPProvider_SignIn(t *testing.T) {
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "ops@example.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-token",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-token",
			"user":          map[string]string{"id": "user-1", "email": "ops@example.com"},
		})
	}))

	who, session, err := provider.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", who.ID)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)
	assert.Equal(t, "refresh-token", session.RefreshToken)
}

func TestHTTPProvider_SignIn_IdentityRecoveredFromTokenClaims(t *testing.T) {
	// некоторые провайдеры отдают только токены, без объекта user
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
		Email:            "ops@example.com",
		Role:             "authenticated",
	}).SignedString([]byte("not-checked"))
	require.NoError(t, err)

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	}))

	who, session, err := provider.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-42", who.ID)
	assert.Equal(t, "ops@example.com", who.Email)
	assert.Equal(t, "authenticated", who.Role)
	assert.Equal(t, token, session.AccessToken)
}

func TestHTTPProvider_SignIn_RejectedCredentials(t *testing.T) {
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))

	_, _, err := provider.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHTTPProvider_SignIn_ProviderDown(t *testing.T) {
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))

	_, _, err := provider.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestHTTPProvider_Verify(t *testing.T) {
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/user", r.URL.Path)
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Identity{ID: "user-1", Email: "ops@example.com"})
	}))

	who, err := provider.Verify(context.Background(), "good-token")

	require.NoError(t, err)
	assert.Equal(t, "user-1", who.ID)
}

func TestHTTPProvider_Verify_InvalidToken(t *testing.T) {
	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid JWT"}`, http.StatusUnauthorized)
	}))

	_, err := provider.Verify(context.Background(), "expired-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewHTTPProvider_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPProvider(config.Identity{BaseURL: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://project.supabase.co/auth/v1", want: "https://project.supabase.co/auth/v1"},
		{in: "project.supabase.co/auth/v1", want: "https://project.supabase.co/auth/v1"},
		{in: "https://project.supabase.co/", want: "https://project.supabase.co"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
