// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ops@example.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SignInResponse{
			Message: "sign-in successful",
			User:    models.Identity{ID: "user-1", Email: "ops@example.com"},
			Session: models.Session{AccessToken: "access-token", TokenType: "bearer", ExpiresIn: 3600},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	who, session, err := a.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", who.ID)
	assert.Equal(t, "access-token", session.AccessToken)
	assert.Equal(t, "access-token", a.Token())
}

func TestSignIn_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid email/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestSignIn_IdentityProviderDown(t *testing.T) {
	// the server answers a generic 500 when its identity provider is out
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.SignIn(context.Background(), models.Credentials{Email: "ops@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── GetConfig ───────────────────────────────────────────────────────────────

func TestGetConfig_ForwardsDeploymentOrigin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/config", r.URL.Path)
		assert.Equal(t, "https", r.Header.Get("X-Forwarded-Proto"))
		assert.Equal(t, "app.example.com", r.Header.Get("X-Forwarded-Host"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"featureEnabled": false, "theme": "light"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.GetConfig(context.Background(), "HTTPS://App.Example.com")

	require.NoError(t, err)
	assert.JSONEq(t, `{"featureEnabled": false, "theme": "light"}`, string(doc))
}

func TestGetConfig_RejectsNonOriginURL(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")

	_, err := a.GetConfig(context.Background(), "https://app.example.com/admin")

	require.Error(t, err)
}

func TestGetConfig_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetConfig(context.Background(), "https://app.example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── UpdateConfig ────────────────────────────────────────────────────────────

func TestUpdateConfig_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/deployments/update-config", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.UpdateConfigResponse{
			Message: "deployment created",
			Data:    models.Deployment{URL: "https://app.example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("access-token")

	resp, err := a.UpdateConfig(context.Background(), models.UpdateConfigRequest{
		URL:    "https://app.example.com",
		Config: json.RawMessage(`{"theme":"dark"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "deployment created", resp.Message)
	assert.Equal(t, "https://app.example.com", resp.Data.URL)
}

func TestUpdateConfig_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.UpdateConfig(context.Background(), models.UpdateConfigRequest{
		URL:    "https://app.example.com",
		Config: json.RawMessage(`{}`),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetServerVersion ────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.GetServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

// ── splitOrigin ─────────────────────────────────────────────────────────────

func TestSplitOrigin(t *testing.T) {
	tests := []struct {
		in      string
		scheme  string
		host    string
		wantErr bool
	}{
		{in: "https://app.example.com", scheme: "https", host: "app.example.com"},
		{in: "http://localhost:3000", scheme: "http", host: "localhost:3000"},
		{in: "HTTPS://App.Example.COM/", scheme: "https", host: "app.example.com"},
		{in: "", wantErr: true},
		{in: "app.example.com", wantErr: true},
		{in: "https://app.example.com/admin", wantErr: true},
	}

	for _, tt := range tests {
		scheme, host, err := splitOrigin(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.scheme, scheme, tt.in)
		assert.Equal(t, tt.host, host, tt.in)
	}
}
