package websearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChain(t *testing.T) {
	t.Run("no credentials leaves only the free fallback", func(t *testing.T) {
		chain := NewChain(Config{})
		require.Len(t, chain, 1)
		assert.Equal(t, "duckduckgo", chain[0].Name())
	})

	t.Run("all providers in priority order", func(t *testing.T) {
		chain := NewChain(Config{SerpAPIKey: "sk", BingAPIKey: "bk"})
		require.Len(t, chain, 3)
		assert.Equal(t, "serpapi", chain[0].Name())
		assert.Equal(t, "bing", chain[1].Name())
		assert.Equal(t, "duckduckgo", chain[2].Name())
	})

	t.Run("missing serpapi key skips only serpapi", func(t *testing.T) {
		chain := NewChain(Config{BingAPIKey: "bk"})
		require.Len(t, chain, 2)
		assert.Equal(t, "bing", chain[0].Name())
		assert.Equal(t, "duckduckgo", chain[1].Name())
	})

	t.Run("empty chain is valid", func(t *testing.T) {
		chain := NewChain(Config{DisableDuckDuckGo: true})
		assert.Empty(t, chain)
	})
}

type stubStore struct {
	values map[string]string
}

func (s *stubStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubStore) GetString(key string) string {
	return s.values[key]
}

func (s *stubStore) Set(string, any) error { return nil }

func (s *stubStore) Load() error { return nil }

func TestConfigFromStore(t *testing.T) {
	t.Run("store values win", func(t *testing.T) {
		t.Setenv("SERP_API_KEY", "env-sk")
		t.Setenv("BING_SEARCH_KEY", "env-bk")

		store := &stubStore{values: map[string]string{
			"search.serpapi_api_key": "sk",
			"search.bing_api_key":    "bk",
		}}

		cfg := ConfigFromStore(store)
		assert.Equal(t, "sk", cfg.SerpAPIKey)
		assert.Equal(t, "bk", cfg.BingAPIKey)
	})

	t.Run("environment fills missing keys", func(t *testing.T) {
		t.Setenv("SERP_API_KEY", "env-sk")
		t.Setenv("BING_SEARCH_KEY", "env-bk")

		cfg := ConfigFromStore(&stubStore{values: map[string]string{}})
		assert.Equal(t, "env-sk", cfg.SerpAPIKey)
		assert.Equal(t, "env-bk", cfg.BingAPIKey)
	})
}
