package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/service"
	"github.com/MKhiriev/go-deploy-config/internal/store"
	"github.com/MKhiriev/go-deploy-config/internal/validators"
	"github.com/MKhiriev/go-deploy-config/models"
)

var errorStatusMap = map[error]int{
	service.ErrNoURLProvided:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	models.ErrEmptyConfig:       http.StatusBadRequest,
	models.ErrInvalidConfigJSON: http.StatusBadRequest,

	validators.ErrEmptyURL:         http.StatusBadRequest,
	validators.ErrUnparsableURL:    http.StatusBadRequest,
	validators.ErrInvalidURLScheme: http.StatusBadRequest,
	validators.ErrMissingURLHost:   http.StatusBadRequest,
	validators.ErrURLNotAnOrigin:   http.StatusBadRequest,

	identity.ErrInvalidCredentials:  http.StatusUnauthorized,
	identity.ErrInvalidToken:        http.StatusUnauthorized,
	identity.ErrProviderUnavailable: http.StatusInternalServerError,

	store.ErrDeploymentNotFound:      http.StatusNotFound,
	store.ErrDeploymentAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
