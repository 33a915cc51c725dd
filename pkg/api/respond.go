package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ponabinanth/inventory-service/pkg/binder"
	"github.com/ponabinanth/inventory-service/pkg/inventory"
	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/notifier"
	"github.com/ponabinanth/inventory-service/pkg/validator"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail carries a machine-readable error code, a human-readable
// message, and optional per-field validation details.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func respond(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	respond(w, status, Envelope{Data: data})
}

func respondErrorCode(w http.ResponseWriter, status int, code, message string) {
	respond(w, status, Envelope{Error: &ErrorDetail{Code: code, Message: message}})
}

// respondError maps domain errors onto HTTP statuses and the error envelope.
// Unknown errors come back as an opaque 500 so internals never leak.
func (h *handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		details := make(map[string][]string, len(verrs.Fields()))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		respond(w, http.StatusUnprocessableEntity, Envelope{Error: &ErrorDetail{
			Code:    "validation_error",
			Message: "request failed validation",
			Details: details,
		}})
	case errors.Is(err, notifier.ErrUnknownChannel):
		respondErrorCode(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, inventory.ErrProductNotFound):
		respondErrorCode(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, inventory.ErrDuplicateSKU):
		respondErrorCode(w, http.StatusConflict, "duplicate_sku", err.Error())
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType):
		respondErrorCode(w, http.StatusBadRequest, "invalid_payload", err.Error())
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
		respondErrorCode(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
