// Package bing provides a search provider adapter using the Bing Web
// Search API (v7).
package bing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.bing.microsoft.com/v7.0/search"
	DefaultTimeout = 10 * time.Second

	// Free-tier Bing allows 3 transactions per second.
	requestsPerSecond = 3
)

// Config holds configuration for the Bing provider.
type Config struct {
	// APIKey is the Azure subscription key (required).
	APIKey string

	// BaseURL is the API endpoint (default: the public v7 endpoint).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// Provider queries the Bing Web Search API and decodes web page
// results into the structured response shape.
type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	bucket  *rate.Limiter
}

// searchResponse is the subset of the Bing response we consume.
type searchResponse struct {
	WebPages struct {
		Value []struct {
			Name    string `json:"name"`
			Snippet string `json:"snippet"`
			URL     string `json:"url"`
		} `json:"value"`
	} `json:"webPages"`
}

// NewProvider creates a Bing search provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("bing: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Provider{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		bucket:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// Name identifies the provider in logs and fallback ordering.
func (p *Provider) Name() string {
	return "bing"
}

// Search runs one query and returns the structured results.
func (p *Provider) Search(ctx context.Context, query string) (domain.ProviderResponse, error) {
	if err := p.bucket.Wait(ctx); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ProviderResponse{}, fmt.Errorf("bing: status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("decode response: %w", err)
	}

	records := make([]domain.ProviderRecord, 0, len(decoded.WebPages.Value))
	for _, r := range decoded.WebPages.Value {
		records = append(records, domain.ProviderRecord{
			Title:   r.Name,
			Snippet: r.Snippet,
			URL:     r.URL,
		})
	}
	return domain.StructuredResponse(records), nil
}
