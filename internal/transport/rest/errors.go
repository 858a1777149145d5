package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/topics-backend/internal/domain"
	"github.com/heartmarshall/topics-backend/internal/transport/middleware"
)

// Error codes returned in the response envelope.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeCancelled  = "CANCELLED"
	CodeInternal   = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes what went wrong.
type ErrorBody struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  []FieldErrorBody `json:"fields,omitempty"`
}

// FieldErrorBody is a single field-level validation failure.
type FieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps a service error to an HTTP status and writes the envelope.
// Only unexpected errors are logged; everything else is the client's doing.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, middleware.StatusClientClosedRequest, CodeCancelled, "request cancelled")
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "topic not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, CodeConflict, "topic already exists")
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	fields := make([]FieldErrorBody, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, FieldErrorBody{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
