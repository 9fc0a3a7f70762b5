package websearch

import (
	"os"
	"time"

	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/websearch/bing"
	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/websearch/duckduckgo"
	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/websearch/serpapi"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Config selects which providers join the fallback chain.
type Config struct {
	// SerpAPIKey enables the SerpAPI provider when non-empty.
	SerpAPIKey string

	// BingAPIKey enables the Bing provider when non-empty.
	BingAPIKey string

	// DisableDuckDuckGo drops the keyless fallback provider.
	DisableDuckDuckGo bool

	// Timeout overrides the per-request timeout for all providers.
	Timeout time.Duration
}

// NewChain builds the provider fallback chain in priority order:
// SerpAPI, Bing, DuckDuckGo. Providers whose credentials are absent
// are skipped; an empty chain is valid and means offline-only
// operation.
func NewChain(cfg Config) []driven.SearchProvider {
	var chain []driven.SearchProvider

	if cfg.SerpAPIKey != "" {
		p, err := serpapi.NewProvider(serpapi.Config{
			APIKey:  cfg.SerpAPIKey,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			logger.Warn("skipping serpapi provider: %v", err)
		} else {
			chain = append(chain, p)
		}
	} else {
		logger.Debug("no SerpAPI key configured, skipping provider")
	}

	if cfg.BingAPIKey != "" {
		p, err := bing.NewProvider(bing.Config{
			APIKey:  cfg.BingAPIKey,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			logger.Warn("skipping bing provider: %v", err)
		} else {
			chain = append(chain, p)
		}
	} else {
		logger.Debug("no Bing key configured, skipping provider")
	}

	if !cfg.DisableDuckDuckGo {
		chain = append(chain, duckduckgo.NewProvider(duckduckgo.Config{
			Timeout: cfg.Timeout,
		}))
	}

	names := make([]string, 0, len(chain))
	for _, p := range chain {
		names = append(names, p.Name())
	}
	logger.Debug("search provider chain: %v", names)

	return chain
}

// ConfigFromStore reads provider credentials from the configuration
// store using the search.* key namespace. Environment variables fill
// in keys the store does not hold.
func ConfigFromStore(store driven.ConfigStore) Config {
	cfg := Config{
		SerpAPIKey: store.GetString("search.serpapi_api_key"),
		BingAPIKey: store.GetString("search.bing_api_key"),
	}
	if cfg.SerpAPIKey == "" {
		cfg.SerpAPIKey = os.Getenv("SERP_API_KEY")
	}
	if cfg.BingAPIKey == "" {
		cfg.BingAPIKey = os.Getenv("BING_SEARCH_KEY")
	}
	return cfg
}
