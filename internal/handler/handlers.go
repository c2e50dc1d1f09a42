// Package handler aggregates the transport-level handlers of the
// application.
package handler

import (
	"github.com/MKhiriev/go-deploy-config/internal/handler/http"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
