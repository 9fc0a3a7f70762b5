package bing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestNewProvider(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewProvider(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("applies defaults", func(t *testing.T) {
		p, err := NewProvider(Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, p.baseURL)
		assert.Equal(t, "bing", p.Name())
	})
}

func TestProvider_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("sends subscription key header and decodes results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
			assert.Equal(t, "occlusion shader", r.URL.Query().Get("q"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"webPages": {
					"value": [
						{"name": "Occlusion Guide", "snippet": "Depth testing.", "url": "https://docs.unity3d.com/o"}
					]
				}
			}`))
		}))
		defer server.Close()

		p, err := NewProvider(Config{APIKey: "test-key", BaseURL: server.URL})
		require.NoError(t, err)

		resp, err := p.Search(ctx, "occlusion shader")
		require.NoError(t, err)

		assert.Equal(t, domain.ProviderResponseStructured, resp.Kind)
		require.Len(t, resp.Records, 1)
		assert.Equal(t, "Occlusion Guide", resp.Records[0].Title)
		assert.Equal(t, "Depth testing.", resp.Records[0].Snippet)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		p, err := NewProvider(Config{APIKey: "bad-key", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = p.Search(ctx, "query")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("missing webPages yields empty response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"_type": "SearchResponse"}`))
		}))
		defer server.Close()

		p, err := NewProvider(Config{APIKey: "test-key", BaseURL: server.URL})
		require.NoError(t, err)

		resp, err := p.Search(ctx, "query")
		require.NoError(t, err)
		assert.True(t, resp.Empty())
	})
}
