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

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// getAllServices serves both the public and the admin listing
func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.serviceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "services", err))
			return
		}

		h.responder.WriteJSON(w, services)
	}
}

func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var service models.Service
		if err := decodeJSONStrict(r, &service); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if service.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if err := h.serviceRepo.Add(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "service", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, service)
	}
}

func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := uuid.Parse(chi.URLParam(r, "serviceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid serviceID"))
			return
		}

		existing, err := h.serviceRepo.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		var service models.Service
		if err := decodeJSONStrict(r, &service); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the path
		service.ID = serviceID

		if err := h.serviceRepo.Update(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "service", err))
			return
		}

		h.responder.WriteJSON(w, service)
	}
}

// deleteService always reports success; deleting an absent row is a no-op.
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := uuid.Parse(chi.URLParam(r, "serviceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid serviceID"))
			return
		}

		if err := h.serviceRepo.Delete(serviceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "service", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "service deleted successfully",
		})
	}
}
