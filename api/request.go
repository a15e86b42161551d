package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mwhitford/portfolio-backend/errs"
)

// decodeJSONStrict decodes the request body into v, rejecting unknown
// fields so silently-dropped payload keys surface as 400s instead of
// partial writes.
func decodeJSONStrict(r *http.Request, v any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}

	decoder := json.NewDecoder(bytes.NewReader(bodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
