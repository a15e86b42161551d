package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/database"
	"github.com/mwhitford/portfolio-backend/errs"
	"github.com/mwhitford/portfolio-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile is the public read: 404 when no profile exists yet.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("profile not found"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// getAdminProfile mirrors the public read but answers an empty object
// instead of 404 so the admin form can render blank.
func (h profileHandler) getAdminProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		if profile == nil {
			h.responder.WriteJSON(w, map[string]interface{}{})
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// replaceProfile deletes every profile row and inserts the submitted one.
// The profile is a singleton; last write wins with no merge.
func (h profileHandler) replaceProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := decodeJSONStrict(r, &profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if profile.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if err := h.profileRepo.Replace(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
