package mcp

import "errors"

// Port validation errors.
var (
	ErrMissingAssistantService = errors.New("assistant service is required")
	ErrMissingDebugService     = errors.New("debug service is required")
)
