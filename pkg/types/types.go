package types

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Error error
	Code  int
}

// NewValidationError reports a rejected input, naming the offending
// field.
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Error: fmt.Errorf("%s: %s", field, reason),
		Code:  http.StatusBadRequest,
	}
}
