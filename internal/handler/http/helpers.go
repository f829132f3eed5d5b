package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"kidswear-backend/internal/catalog"
	"kidswear-backend/internal/store"
)

// ValidationErrorResponse carries field-level detail for a 422.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondWithValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	respondWithJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "Validation failed",
		Details: formatValidationErrors(errs),
	})
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fieldError := range errs {
		var message string
		switch fieldError.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", fieldError.Field())
		case "min":
			message = fmt.Sprintf("Field '%s' must be at least %s", fieldError.Field(), fieldError.Param())
		case "gte":
			message = fmt.Sprintf("Field '%s' must be %s or greater", fieldError.Field(), fieldError.Param())
		case "lte":
			message = fmt.Sprintf("Field '%s' must be %s or less", fieldError.Field(), fieldError.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", fieldError.Field(), fieldError.Param())
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", fieldError.Field())
		default:
			message = fmt.Sprintf("Field '%s' failed validation on '%s'", fieldError.Field(), fieldError.Tag())
		}
		details[fieldError.Namespace()] = message
	}
	return details
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
