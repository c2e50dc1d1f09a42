package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/service"
	"github.com/MKhiriev/go-deploy-config/internal/store"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetConfig_ResolvesOriginFromRequest(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.config.EXPECT().
		GetOrCreate(gomock.Any(), "https://app.example.com").
		Return(models.ConfigDocument(`{"theme":"dark"}`), nil)

	r := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	r.Host = "internal:8080"
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Host", "app.example.com")
	w := httptest.NewRecorder()

	h.getConfig(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())
}

func TestGetConfig_ServiceFailure(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.config.EXPECT().
		GetOrCreate(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	r := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w := httptest.NewRecorder()

	h.getConfig(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateConfig_UpdatesExisting(t *testing.T) {
	h, mocks := newTestHandler(t)

	now := time.Now()
	mocks.config.EXPECT().
		Upsert(gomock.Any(), "https://app.example.com", json.RawMessage(`{"theme":"dark"}`)).
		Return(models.Deployment{
			URL:       "https://app.example.com",
			Config:    models.ConfigDocument(`{"theme":"dark"}`),
			CreatedAt: now.Add(-time.Hour),
			UpdatedAt: now,
		}, false, nil)

	body := strings.NewReader(`{"url": "https://app.example.com", "config": {"theme":"dark"}}`)
	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", body)
	w := httptest.NewRecorder()

	h.updateConfig(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UpdateConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deployment config updated", resp.Message)
	assert.Equal(t, "https://app.example.com", resp.Data.URL)
}

func TestUpdateConfig_CreatesMissingDeployment(t *testing.T) {
	h, mocks := newTestHandler(t)

	now := time.Now()
	mocks.config.EXPECT().
		Upsert(gomock.Any(), "https://new.example.com", gomock.Any()).
		Return(models.Deployment{
			URL:       "https://new.example.com",
			Config:    models.ConfigDocument(`{"theme":"dark"}`),
			CreatedAt: now,
			UpdatedAt: now,
		}, true, nil)

	body := strings.NewReader(`{"url": "https://new.example.com", "config": {"theme":"dark"}}`)
	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", body)
	w := httptest.NewRecorder()

	h.updateConfig(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.UpdateConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deployment created", resp.Message)
}

func TestUpdateConfig_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", strings.NewReader(`{broken`))
	w := httptest.NewRecorder()

	h.updateConfig(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateConfig_ValidationErrorsMapToBadRequest(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "missing url", err: service.ErrNoURLProvided},
		{name: "empty config", err: models.ErrEmptyConfig},
		{name: "invalid config JSON", err: models.ErrInvalidConfigJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)

			mocks.config.EXPECT().
				Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.Deployment{}, false, tt.err)

			body := strings.NewReader(`{"url": "https://app.example.com", "config": {}}`)
			r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", body)
			w := httptest.NewRecorder()

			h.updateConfig(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateConfig_StorageFailureHidesDetail(t *testing.T) {
	h, mocks := newTestHandler(t)

	dbErr := fmt.Errorf("deployment upsert failed: %w: pq: connection to host db-internal.local failed", store.ErrExecutingQuery)
	mocks.config.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Deployment{}, false, dbErr)

	body := strings.NewReader(`{"url": "https://app.example.com", "config": {}}`)
	r := httptest.NewRequest(http.MethodPost, "/api/deployments/update-config", body)
	w := httptest.NewRecorder()

	h.updateConfig(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError)+"\n", w.Body.String())
	assert.NotContains(t, w.Body.String(), "db-internal.local")
}

func TestGetServerVersion(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.appInfo.EXPECT().
		GetAppVersion(gomock.Any()).
		Return("1.2.3")

	r := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()

	h.getServerVersion(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.2.3", w.Body.String())
}
