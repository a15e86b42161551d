package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/database"
	"github.com/mwhitford/portfolio-backend/errs"
	"github.com/mwhitford/portfolio-backend/models"
)

type skillGroupHandler struct {
	responder      Responder
	logger         zerolog.Logger
	skillGroupRepo *database.SkillGroupRepo
}

func newSkillGroupHandler(skillGroupRepo *database.SkillGroupRepo) skillGroupHandler {
	logger := log.With().Str("handlerName", "skillGroupHandler").Logger()

	return skillGroupHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		skillGroupRepo: skillGroupRepo,
	}
}

// getAllSkillGroups serves both the public and the admin listing
func (h skillGroupHandler) getAllSkillGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := h.skillGroupRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill groups", err))
			return
		}

		h.responder.WriteJSON(w, groups)
	}
}

func (h skillGroupHandler) createSkillGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var group models.SkillGroup
		if err := decodeJSONStrict(r, &group); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if group.Category == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		if err := h.skillGroupRepo.Add(&group); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill group", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, group)
	}
}

func (h skillGroupHandler) updateSkillGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := uuid.Parse(chi.URLParam(r, "skillGroupID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillGroupID"))
			return
		}

		existing, err := h.skillGroupRepo.FindByID(groupID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill group", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill group not found"))
			return
		}

		var group models.SkillGroup
		if err := decodeJSONStrict(r, &group); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the path
		group.ID = groupID

		if err := h.skillGroupRepo.Update(&group); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill group", err))
			return
		}

		h.responder.WriteJSON(w, group)
	}
}

// deleteSkillGroup always reports success; deleting an absent row is a no-op.
func (h skillGroupHandler) deleteSkillGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := uuid.Parse(chi.URLParam(r, "skillGroupID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillGroupID"))
			return
		}

		if err := h.skillGroupRepo.Delete(groupID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill group", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill group deleted successfully",
		})
	}
}
