package driven

import (
	"context"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// SearchProvider is one external web search backend. Providers sit in
// a fixed-priority fallback chain; a failing provider is logged and
// skipped, never allowed to abort the search.
type SearchProvider interface {
	// Name identifies the provider in logs and fallback ordering.
	Name() string

	// Search runs one query against the provider. The response is
	// decoded into the tagged raw/structured union at this
	// boundary. Implementations must honour ctx cancellation and
	// bound each call with a timeout.
	Search(ctx context.Context, query string) (domain.ProviderResponse, error)
}
