package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deploy-config/internal/adapter"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/workers"
)

const versionProbeTimeout = 5 * time.Second

// serverVersionWorker probes the server's /api/version endpoint once at
// startup in the background so that connectivity problems surface in the
// client log before the operator submits a form.
type serverVersionWorker struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func newServerVersionWorker(serverAdapter adapter.ServerAdapter, logger *logger.Logger) workers.Worker {
	return &serverVersionWorker{adapter: serverAdapter, logger: logger}
}

func (w *serverVersionWorker) Run() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
		defer cancel()

		version, err := w.adapter.GetServerVersion(ctx)
		if err != nil {
			w.logger.Warn().Err(err).Msg("server version probe failed")
			return
		}

		w.logger.Info().Str("server_version", version).Msg("connected to server")
	}()
}
