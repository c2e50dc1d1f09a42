package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deploy-config/internal/app"
	"github.com/MKhiriev/go-deploy-config/internal/identity"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/service"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
	"github.com/MKhiriev/go-deploy-config/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	who, session, err := h.services.AuthService.SignIn(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, identity.ErrInvalidCredentials):
			log.Err(err).Msg("identity provider rejected credentials")
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		case errors.Is(err, identity.ErrProviderUnavailable):
			log.Err(err).Msg(app.MsgIdentityProviderUnavailable)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during sign-in")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", who.ID).Str("email", who.Email).Msg("user successfully signed in")

	utils.WriteJSON(w, models.SignInResponse{
		Message: app.MsgSignInSuccessful,
		User:    who,
		Session: session,
	}, http.StatusOK)
}
