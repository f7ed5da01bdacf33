package service

import (
	"errors"
	"fmt"
	"strings"

	"flight_alerts/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries the field-level error list surfaced as a 400
// response. It unwraps to ErrInvalidInput so handlers can match it with
// errors.Is.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
