// Package driving defines the interfaces the core pipeline exposes to
// inbound adapters (CLI, MCP server).
package driving
