// Package response writes JSON bodies and maps domain errors to HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MadeByDW91/gokartpartpicker/internal/model"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

const maxBodyBytes = 1 << 20

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Decode reads a JSON body into dst. Malformed JSON is reported as a validation error.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("body", "is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return model.NewValidationError(typeErr.Field, "must be a "+typeErr.Type.String())
		}
		return model.NewValidationError("body", "must be valid JSON")
	}
	return nil
}

//nolint:gocyclo
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *model.ValidationError

	switch {
	case errors.As(err, &vErr):
		details := make([]apiv1.FieldErrorResponse, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			details = append(details, apiv1.FieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		JSON(w, r, http.StatusBadRequest, apiv1.ErrorResponse{ // 400
			Error:   "Validation error",
			Details: details,
		})
	case errors.Is(err, model.ErrValidation):
		JSON(w, r, http.StatusBadRequest, apiv1.ErrorResponse{Error: "Validation error"}) // 400
	case errors.Is(err, model.ErrUnauthorized):
		JSON(w, r, http.StatusUnauthorized, apiv1.ErrorResponse{Error: "Unauthorized"}) // 401
	case errors.Is(err, model.ErrPartNotFound):
		JSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{Error: "Part not found"}) // 404
	case errors.Is(err, model.ErrProfileNotFound):
		JSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{Error: "Compatibility profile not found"}) // 404
	case errors.Is(err, model.ErrBuildNotFound):
		JSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{Error: "Build not found"}) // 404
	case errors.Is(err, model.ErrBuildItemNotFound):
		JSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{Error: "Build item not found"}) // 404
	case errors.Is(err, model.ErrNotFound):
		JSON(w, r, http.StatusNotFound, apiv1.ErrorResponse{Error: "Not found"}) // 404
	case errors.Is(err, model.ErrConflict):
		JSON(w, r, http.StatusConflict, apiv1.ErrorResponse{Error: "Conflict"}) // 409
	case errors.Is(err, model.ErrServiceUnavailable):
		JSON(w, r, http.StatusServiceUnavailable, apiv1.ErrorResponse{ // 503
			Error: "Admin authentication not configured",
		})
	default:
		logger.Error(r.Context(), "unhandled error",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
		JSON(w, r, http.StatusInternalServerError, apiv1.ErrorResponse{Error: "Internal server error"}) // 500
	}
}
