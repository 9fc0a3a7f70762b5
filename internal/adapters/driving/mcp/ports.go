package mcp

import (
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers development queries.
	Assistant driving.AssistantService

	// Debug diagnoses error logs.
	Debug driving.DebugService

	// Index exposes offline document retrieval. Optional: when nil
	// the retrieve tool is not registered.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Debug == nil {
		return ErrMissingDebugService
	}
	return nil
}
