// Package duckduckgo provides a search provider adapter using the
// free DuckDuckGo Instant Answer API. It needs no credentials, which
// makes it the fallback of last resort in the provider chain.
package duckduckgo

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
	DefaultBaseURL = "https://api.duckduckgo.com/"
	DefaultTimeout = 10 * time.Second

	// Conservative rate for an unauthenticated public API.
	requestsPerSecond = 1
)

// Config holds configuration for the DuckDuckGo provider.
type Config struct {
	// BaseURL is the API endpoint (default: https://api.duckduckgo.com/).
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// Provider queries the Instant Answer API. Abstract answers come
// back as raw text; otherwise related topics are decoded into the
// structured response shape.
type Provider struct {
	client  *http.Client
	baseURL string
	bucket  *rate.Limiter
}

// searchResponse is the subset of the Instant Answer response we
// consume. RelatedTopics can nest grouped topics; only flat entries
// with a Text field are used.
type searchResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// NewProvider creates a DuckDuckGo search provider.
func NewProvider(cfg Config) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Provider{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		bucket:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Name identifies the provider in logs and fallback ordering.
func (p *Provider) Name() string {
	return "duckduckgo"
}

// Search runs one query against the Instant Answer API.
func (p *Provider) Search(ctx context.Context, query string) (domain.ProviderResponse, error) {
	if err := p.bucket.Wait(ctx); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
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
		return domain.ProviderResponse{}, fmt.Errorf("duckduckgo: status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("decode response: %w", err)
	}

	if decoded.AbstractText != "" {
		return domain.RawResponse(decoded.AbstractText), nil
	}

	records := make([]domain.ProviderRecord, 0, len(decoded.RelatedTopics))
	for _, t := range decoded.RelatedTopics {
		if t.Text == "" {
			continue
		}
		records = append(records, domain.ProviderRecord{
			Title:   t.Text,
			Snippet: t.Text,
			URL:     t.FirstURL,
		})
	}
	return domain.StructuredResponse(records), nil
}
