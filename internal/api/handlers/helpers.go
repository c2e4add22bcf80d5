package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pratik-mahalle/calendrical/internal/pkg/errors"
	"github.com/pratik-mahalle/calendrical/internal/pkg/utils"
	"github.com/pratik-mahalle/calendrical/internal/pkg/validator"
)

// maxBodyBytes bounds request bodies; every request is a handful of strings
const maxBodyBytes = 64 << 10

// decode reads a JSON body into req and validates it. On failure the error
// response has been written and false is returned.
func decode(w http.ResponseWriter, r *http.Request, val *validator.Validator, req interface{}) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return false
	}

	if errs := val.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return false
	}
	return true
}
