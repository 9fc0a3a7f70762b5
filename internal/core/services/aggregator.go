package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

const (
	// maxExecutedQueries bounds external call volume: only the
	// first two enhanced queries are executed.
	maxExecutedQueries = 2

	// maxStructuredResults is the per-response record cap during
	// normalisation.
	maxStructuredResults = 3

	// maxRankedResults is the final result cap per search.
	maxRankedResults = 5

	// defaultProviderTimeout bounds a single provider call.
	defaultProviderTimeout = 10 * time.Second
)

// categorySearchTerms augments queries with platform-specific terms.
// Only the first two terms per category are used.
var categorySearchTerms = map[domain.Category][]string{
	domain.CategoryUnity:   {"Unity3D", "XR Interaction Toolkit", "Unity VR", "Unity AR"},
	domain.CategoryUnreal:  {"Unreal Engine", "UE4", "UE5", "Unreal VR", "Unreal AR"},
	domain.CategoryShader:  {"Unity Shader", "HLSL", "Shader Graph", "URP Shader"},
	domain.CategoryGeneral: {"AR development", "VR development", "Mixed Reality"},
}

// officialDocSites are the site-restriction targets for enhanced
// queries. Only the first three are used.
var officialDocSites = []string{
	"site:docs.unity3d.com",
	"site:docs.unrealengine.com",
	"site:learn.unity.com",
	"site:developer.oculus.com",
	"site:developers.google.com/ar",
}

// priorityDomains boosts official documentation during ranking.
var priorityDomains = map[domain.Category][]string{
	domain.CategoryUnity:   {"docs.unity3d.com", "learn.unity.com"},
	domain.CategoryUnreal:  {"docs.unrealengine.com", "unrealengine.com"},
	domain.CategoryShader:  {"docs.unity3d.com", "catlikecoding.com"},
	domain.CategoryGeneral: {"developer.oculus.com", "developers.google.com"},
}

// arVRTerms boost results whose content mentions the domain.
var arVRTerms = []string{"ar", "vr", "virtual reality", "augmented reality", "mixed reality"}

// Aggregator queries external search providers in priority order with
// fallback, normalises their heterogeneous response shapes, and ranks
// the collected results.
type Aggregator struct {
	providers []driven.SearchProvider
	timeout   time.Duration
}

// NewAggregator creates a web search aggregator over the given
// provider chain. Providers are tried in slice order. A zero timeout
// uses the default per-call bound.
func NewAggregator(providers []driven.SearchProvider, timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &Aggregator{providers: providers, timeout: timeout}
}

// Search runs the enhanced queries for the topic and returns at most
// five ranked results. It never returns an error: a fully failed
// search yields an empty slice, which callers treat as "ungrounded".
func (a *Aggregator) Search(ctx context.Context, query string, category domain.Category) []domain.SearchResult {
	logger.Section("Web Search")
	logger.Debug("Query: %q, category: %s, providers: %d", query, category, len(a.providers))

	queries := buildSearchQueries(query, category)
	if len(queries) > maxExecutedQueries {
		queries = queries[:maxExecutedQueries]
	}

	// Enhanced-query branches share no mutable state, so they run
	// concurrently. Each writes only its own slot.
	branches := make([][]domain.SearchResult, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			branches[i] = a.runFallbackChain(ctx, q)
		}(i, q)
	}
	wg.Wait()

	var collected []domain.SearchResult
	for _, branch := range branches {
		collected = append(collected, branch...)
	}

	logger.Debug("Collected %d results before ranking", len(collected))
	ranked := rankResults(collected, query, category)
	logger.Info("Search returned %d ranked results", len(ranked))
	return ranked
}

// runFallbackChain tries providers in priority order for one query,
// stopping at the first that yields a non-empty parsed result. A
// provider failure is logged and treated as "no result".
func (a *Aggregator) runFallbackChain(ctx context.Context, query string) []domain.SearchResult {
	for _, provider := range a.providers {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		resp, err := provider.Search(callCtx, query)
		cancel()

		if err != nil {
			logger.Warn("Provider %s failed for %q: %v", provider.Name(), query, err)
			continue
		}

		parsed := normaliseResponse(resp, query)
		if len(parsed) > 0 {
			logger.Debug("Provider %s returned %d results for %q", provider.Name(), len(parsed), query)
			return parsed
		}
		logger.Debug("Provider %s returned nothing for %q", provider.Name(), query)
	}
	return nil
}

// buildSearchQueries expands a query into the ordered enhanced-query
// list: up to two term-augmented queries, up to three site-restricted
// queries, and one generic fallback.
func buildSearchQueries(query string, category domain.Category) []string {
	var queries []string

	terms := categorySearchTerms[category]
	if len(terms) > 2 {
		terms = terms[:2]
	}
	for _, term := range terms {
		queries = append(queries, fmt.Sprintf("%s %s tutorial documentation", query, term))
	}

	for _, site := range officialDocSites[:3] {
		queries = append(queries, fmt.Sprintf("%s %s", query, site))
	}

	queries = append(queries, fmt.Sprintf("AR VR development %s official documentation", query))
	return queries
}

// normaliseResponse converts a provider response into search results.
// Raw text wraps into a single result; structured responses take at
// most the first three records. Content is truncated to 500 chars.
func normaliseResponse(resp domain.ProviderResponse, query string) []domain.SearchResult {
	if resp.Empty() {
		return nil
	}

	now := time.Now().UTC()

	if resp.Kind == domain.ProviderResponseRaw {
		return []domain.SearchResult{{
			Title:     "Search Results for: " + query,
			Content:   truncate(resp.Raw, domain.MaxResultContent),
			URL:       "N/A",
			Source:    "Web Search",
			Timestamp: now,
		}}
	}

	records := resp.Records
	if len(records) > maxStructuredResults {
		records = records[:maxStructuredResults]
	}

	results := make([]domain.SearchResult, 0, len(records))
	for _, rec := range records {
		title := rec.Title
		if title == "" {
			title = "No Title"
		}
		url := rec.URL
		if url == "" {
			url = "N/A"
		}
		results = append(results, domain.SearchResult{
			Title:     title,
			Content:   truncate(rec.Snippet, domain.MaxResultContent),
			URL:       url,
			Source:    "Web Search",
			Timestamp: now,
		})
	}
	return results
}

// rankResults scores every collected result and returns the top five.
// Score: 10 per priority domain in the URL, 1 per query word in the
// content, 2 per AR/VR term in the content. The sort is stable so
// ties retain input order.
func rankResults(results []domain.SearchResult, query string, category domain.Category) []domain.SearchResult {
	domains := priorityDomains[category]
	queryWords := strings.Fields(strings.ToLower(query))

	for i := range results {
		score := 0
		url := strings.ToLower(results[i].URL)
		content := strings.ToLower(results[i].Content)

		for _, d := range domains {
			if strings.Contains(url, d) {
				score += 10
			}
		}
		for _, w := range queryWords {
			if strings.Contains(content, w) {
				score++
			}
		}
		for _, term := range arVRTerms {
			if strings.Contains(content, term) {
				score += 2
			}
		}
		results[i].RelevanceScore = score
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if len(results) > maxRankedResults {
		results = results[:maxRankedResults]
	}
	return results
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
