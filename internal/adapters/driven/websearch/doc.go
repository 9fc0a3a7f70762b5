// Package websearch assembles the external search provider chain.
// Providers live in subpackages (serpapi, bing, duckduckgo) and are
// tried in fixed priority order: paid APIs first, the free fallback
// last. A missing credential removes a provider from the chain
// rather than failing startup.
package websearch
