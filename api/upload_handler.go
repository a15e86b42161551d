package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitford/portfolio-backend/errs"
	"github.com/mwhitford/portfolio-backend/uploads"
)

// maxUploadSize caps a single image upload at 5 MiB
const maxUploadSize = 5 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *uploads.Store
}

func newUploadHandler(store *uploads.Store) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Thumb   string `json:"thumb"`
}

// upload accepts a single multipart image, stores it and derives the large
// and thumbnail variants
// @Summary Upload an image
// @Description Accepts one multipart file field, returns URLs of the resized large and thumbnail variants
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} uploadResponse "Variant URLs"
// @Failure 400 {object} ErrorResponse "Bad Request - No file uploaded"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Image processing failed"
// @Router /admin/upload [post]
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, _ := ctxGetUsername(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("no file uploaded"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file uploaded"))
			return
		}
		defer file.Close()

		rawName, err := h.store.SaveRaw(header.Filename, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store upload")
			h.responder.WriteError(w, errs.NewInternalError("image processing failed"))
			return
		}

		largeName, thumbName, err := h.store.DeriveVariants(rawName)
		if err != nil {
			// Raw file is kept for inspection when processing fails
			h.logger.Error().Err(err).Str("file", rawName).Msg("Failed to derive image variants")
			h.responder.WriteError(w, errs.NewInternalError("image processing failed"))
			return
		}

		// Variants are complete; the raw upload has served its purpose
		if err := h.store.Remove(rawName); err != nil {
			h.logger.Warn().Err(err).Str("file", rawName).Msg("Failed to remove raw upload")
		}

		h.logger.Info().
			Str("username", username).
			Str("large", largeName).
			Str("thumb", thumbName).
			Msg("Image uploaded")

		h.responder.WriteJSON(w, uploadResponse{
			Success: true,
			URL:     "/uploads/" + largeName,
			Thumb:   "/uploads/" + thumbName,
		})
	}
}
