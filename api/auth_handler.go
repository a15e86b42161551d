package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/auth"
	"github.com/mwhitford/portfolio-backend/config"
	"github.com/mwhitford/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	config    map[string]string
}

func newAuthHandler(c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		config:    c,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// login checks the submitted credentials against the configured admin pair
// and issues a signed token on match. Any other combination is a 401 with
// no token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds loginRequest
		if err := decodeJSONStrict(r, &creds); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		adminUser := config.GetString(h.config, "ADMIN_USERNAME", "admin")
		adminPass := config.GetString(h.config, "ADMIN_PASSWORD", "admin123")

		if creds.Username != adminUser || creds.Password != adminPass {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		secret := config.GetString(h.config, "JWT_SECRET", "")
		token, err := auth.GenerateToken(secret, creds.Username, auth.TokenTTL)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Success: true, Token: token})
	}
}
