package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Surfaced to the caller immediately, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates the offline document store
	// cannot be reached. The pipeline degrades by skipping offline
	// retrieval rather than failing the request.
	ErrIndexUnavailable = errors.New("document index unavailable")

	// ErrProviderUnavailable indicates a search provider is not
	// configured or failed. Recovered locally by advancing the
	// fallback chain, never surfaced.
	ErrProviderUnavailable = errors.New("search provider unavailable")
)

// ValidationError reports the first schema rule violated by an
// assembled response. The validator does not coerce invalid data.
type ValidationError struct {
	// Field names the offending response field.
	Field string

	// Message describes the violated constraint.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// PipelineError is the structured error shape returned to the
// renderer/transport layer on validation or internal failure.
type PipelineError struct {
	// Message is the human-readable error description.
	Message string `json:"error"`

	// Code identifies the failure class, e.g. "INVALID_INPUT".
	Code string `json:"error_code"`

	// Suggestions lists ways the caller might fix the request.
	Suggestions []string `json:"suggestions"`
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
