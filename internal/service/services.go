package service

import (
	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/store"
)

type Services struct {
	ConfigService  ConfigService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, provider identity.Provider, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		ConfigService:  NewConfigService(storages.DeploymentRepository, logger),
		AuthService:    NewAuthService(provider, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
