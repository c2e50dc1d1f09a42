package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/mock"
	"github.com/MKhiriev/go-deploy-config/internal/service"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	config  *mock.MockConfigService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		config:  mock.NewMockConfigService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		ConfigService:  mocks.config,
		AuthService:    mocks.auth,
		AppInfoService: mocks.appInfo,
	}, logger.Nop())

	return h, mocks
}

func TestSignIn_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), models.Credentials{Email: "ops@example.com", Password: "secret"}).
		Return(
			models.Identity{ID: "user-1", Email: "ops@example.com"},
			models.Session{AccessToken: "token", TokenType: "bearer", ExpiresIn: 3600},
			nil,
		)

	body := strings.NewReader(`{"email": "ops@example.com", "password": "secret"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/auth", body)
	w := httptest.NewRecorder()

	h.signIn(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SignInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "token", resp.Session.AccessToken)
}

func TestSignIn_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{broken`))
	w := httptest.NewRecorder()

	h.signIn(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignIn_MissingFields(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.Identity{}, models.Session{}, service.ErrInvalidDataProvided)

	r := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email": "ops@example.com"}`))
	w := httptest.NewRecorder()

	h.signIn(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignIn_ProviderRejectsCredentials(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.Identity{}, models.Session{}, identity.ErrInvalidCredentials)

	r := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email": "a@b.c", "password": "wrong"}`))
	w := httptest.NewRecorder()

	h.signIn(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignIn_ProviderUnavailable(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		SignIn(gomock.Any(), gomock.Any()).
		Return(models.Identity{}, models.Session{}, identity.ErrProviderUnavailable)

	r := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"email": "a@b.c", "password": "secret"}`))
	w := httptest.NewRecorder()

	h.signIn(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", w.Body.String())
}
