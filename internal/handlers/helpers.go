package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/models"
	"flight_alerts/internal/repository"
	"flight_alerts/internal/service"
)

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))

	if err := dec.Decode(dst); err != nil {
		return err
	}

	// Reject a second JSON object in the body.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("only one JSON object is allowed")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string, fields []models.FieldError) {
	writeJSON(w, status, models.ErrorResponse{Message: msg, Errors: fields})
}

// respondServiceError maps service-layer failures onto the HTTP error
// taxonomy: validation -> 400 with the field list, unknown id -> 404,
// anything else -> 500 with a generic message.
func respondServiceError(w http.ResponseWriter, log logger.Logger, err error, badRequestMsg, notFoundMsg, internalMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, badRequestMsg, verr.Fields)
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, badRequestMsg, nil)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg, nil)
	default:
		log.Error(internalMsg, "error", err.Error())
		writeError(w, http.StatusInternalServerError, internalMsg, nil)
	}
}
