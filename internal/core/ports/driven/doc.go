// Package driven defines the interfaces the core pipeline depends on.
// Adapters (storage, web search providers, config) implement these.
package driven
