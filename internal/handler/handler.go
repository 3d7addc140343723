package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cupcake-api/internal/middleware"
	"cupcake-api/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code. The body is
// encoded before the status goes out so an encoding failure can still be
// reported as a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, logger zerolog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		correlationID := middleware.RequestIDFromContext(r.Context())
		logger.Error().Err(err).
			Int("status", status).
			Str("correlation_id", correlationID).
			Msg("failed to encode response")

		status = http.StatusInternalServerError
		body, _ = json.Marshal(model.ErrorResponse{
			Error:         model.ErrCodeInternalError,
			Message:       "failed to encode response",
			CorrelationID: correlationID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, r, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	}, logger)
}

// writeServiceError maps a service error onto an HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger zerolog.Logger) {
	var de *model.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == model.ErrCodeCupcakeNotFound {
			status = http.StatusNotFound
		}
		writeError(w, r, status, de.Code, de.Message, logger)
		return
	}

	logger.Error().Err(err).Msg(fallback)
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
}

// pathID parses the {id} path value. ok is false when it is not a positive integer.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
