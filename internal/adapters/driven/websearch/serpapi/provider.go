// Package serpapi provides a search provider adapter using the
// SerpAPI Google Search API.
package serpapi

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
	DefaultBaseURL = "https://serpapi.com"
	DefaultTimeout = 10 * time.Second

	// requestsPerSecond throttles proactively; SerpAPI plans are
	// billed per search.
	requestsPerSecond = 1
)

// Config holds configuration for the SerpAPI provider.
type Config struct {
	// APIKey is the SerpAPI key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://serpapi.com).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// Provider queries SerpAPI and decodes organic results into the
// structured response shape.
type Provider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	bucket  *rate.Limiter
}

// searchResponse is the subset of the SerpAPI response we consume.
type searchResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
	Error string `json:"error,omitempty"`
}

// NewProvider creates a SerpAPI search provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serpapi: API key is required")
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
	return "serpapi"
}

// Search runs one query and returns the structured results.
func (p *Provider) Search(ctx context.Context, query string) (domain.ProviderResponse, error) {
	if err := p.bucket.Wait(ctx); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, p.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("create request: %w", err)
	}

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
		return domain.ProviderResponse{}, fmt.Errorf("serpapi: status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if decoded.Error != "" {
		return domain.ProviderResponse{}, fmt.Errorf("serpapi: %s", decoded.Error)
	}

	records := make([]domain.ProviderRecord, 0, len(decoded.OrganicResults))
	for _, r := range decoded.OrganicResults {
		records = append(records, domain.ProviderRecord{
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.Link,
		})
	}
	return domain.StructuredResponse(records), nil
}
