package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/database"
	"github.com/mwhitford/portfolio-backend/errs"
	"github.com/mwhitford/portfolio-backend/models"
	"github.com/mwhitford/portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactRepo, c map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      c,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitContactMessage validates the four required fields, appends the
// message to the log and acknowledges with a fixed message. Owner
// notification happens out-of-band and never affects the response.
func (h contactHandler) submitContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeJSONStrict(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Checked in a fixed order so the same request always names
		// the same missing field.
		for _, field := range []struct {
			name  string
			value string
		}{
			{"name", req.Name},
			{"email", req.Email},
			{"subject", req.Subject},
			{"message", req.Message},
		} {
			if field.value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field.name))
				return
			}
		}

		message := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		if err := h.contactRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		go func() {
			if err := services.NotifyContactMessage(h.config, message); err != nil {
				h.logger.Error().Err(err).Msg("Failed to send contact notification")
			}
		}()

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
			"message": "Successfully submitted and we will reach you within 24 hour",
		})
	}
}

// getAllContactMessages returns the admin-only log, most recent first
func (h contactHandler) getAllContactMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}
