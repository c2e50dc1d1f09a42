package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	r.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TokenRejected(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		VerifyToken(gomock.Any(), "bad-token").
		Return(models.Identity{}, identity.ErrInvalidToken)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	r.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ProviderOutageIsUnauthorized(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		VerifyToken(gomock.Any(), "token").
		Return(models.Identity{}, identity.ErrProviderUnavailable)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	r.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	// a provider outage must not leak as a distinct status: the caller sees
	// the same 401 as for a revoked token
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_StoresIdentityInContext(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		VerifyToken(gomock.Any(), "good-token").
		Return(models.Identity{ID: "user-1", Email: "ops@example.com"}, nil)

	var captured models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		who, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		captured = who
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", nil)
	r.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	h.auth(next).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.ID)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = getTokenFromAuthHeader("abc123")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
