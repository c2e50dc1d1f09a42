package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-deploy-config/internal/app"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
	"github.com/MKhiriev/go-deploy-config/models"
)

// getConfig serves the read path of the configuration store.
//
// The deployment is identified by the public origin of the request
// (see [resolveOrigin]); unknown deployments are registered with the
// default config on first read, so this endpoint never responds 404.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	url := resolveOrigin(r)

	config, err := h.services.ConfigService.GetOrCreate(ctx, url)
	if err != nil {
		log.Err(err).Str("url", url).Msg("error occurred during config lookup")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(config)
}

// updateConfig serves the write path of the configuration store.
//
// Responds 200 when an existing deployment's config was replaced and 201
// when the write created the deployment row.
func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	deployment, created, err := h.services.ConfigService.Upsert(ctx, request.URL, request.Config)
	if err != nil {
		log.Err(err).Str("url", request.URL).Msg("error occurred during config update")

		// validation problems are the caller's to correct; anything
		// server-side stays in the log
		status := statusFromError(err)
		message := err.Error()
		if status >= http.StatusInternalServerError {
			message = http.StatusText(status)
		}
		http.Error(w, message, status)
		return
	}

	status := http.StatusOK
	message := app.MsgDeploymentConfigUpdated
	if created {
		status = http.StatusCreated
		message = app.MsgDeploymentCreated
	}

	utils.WriteJSON(w, models.UpdateConfigResponse{
		Message: message,
		Data:    deployment,
	}, status)
}
