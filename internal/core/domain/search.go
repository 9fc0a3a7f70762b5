package domain

import "time"

// MaxResultContent is the truncation limit applied to search result
// content during normalisation.
const MaxResultContent = 500

// SearchResult is a single normalised web search hit. Results are
// transient: produced per query and never persisted.
type SearchResult struct {
	// Title is the result title.
	Title string `json:"title"`

	// Content is the snippet text, truncated to MaxResultContent.
	Content string `json:"content"`

	// URL is the source location, or "N/A" for raw-text responses.
	URL string `json:"url"`

	// Source labels the producing provider family.
	Source string `json:"source"`

	// Timestamp is when the result was collected.
	Timestamp time.Time `json:"timestamp"`

	// RelevanceScore is a non-negative ranking score; higher is
	// better. It is comparable only within a single query.
	RelevanceScore int `json:"relevance_score"`
}

// ProviderResponseKind discriminates the two response shapes search
// providers return.
type ProviderResponseKind int

const (
	// ProviderResponseRaw is an unstructured text blob.
	ProviderResponseRaw ProviderResponseKind = iota

	// ProviderResponseStructured is a list of result records.
	ProviderResponseStructured
)

// ProviderRecord is one structured result as returned by a provider,
// before normalisation.
type ProviderRecord struct {
	Title   string
	Snippet string
	URL     string
}

// ProviderResponse is the tagged union of provider response shapes.
// It is decoded at the provider boundary; downstream code switches on
// Kind rather than inspecting payloads ad hoc.
type ProviderResponse struct {
	Kind    ProviderResponseKind
	Raw     string
	Records []ProviderRecord
}

// RawResponse wraps an unstructured text blob.
func RawResponse(text string) ProviderResponse {
	return ProviderResponse{Kind: ProviderResponseRaw, Raw: text}
}

// StructuredResponse wraps a list of result records.
func StructuredResponse(records []ProviderRecord) ProviderResponse {
	return ProviderResponse{Kind: ProviderResponseStructured, Records: records}
}

// Empty reports whether the response carries no usable results.
func (r ProviderResponse) Empty() bool {
	switch r.Kind {
	case ProviderResponseRaw:
		return r.Raw == ""
	case ProviderResponseStructured:
		return len(r.Records) == 0
	}
	return true
}

// Grounding is the fused retrieval payload attached to a response.
type Grounding struct {
	// Results are the primary search results, ranked, at most 5.
	Results []SearchResult `json:"search_results"`

	// BestPractices are extracted recommendation sentences.
	BestPractices []string `json:"best_practices"`

	// Gotchas are extracted pitfall sentences.
	Gotchas []string `json:"gotchas"`

	// DocLinks are official documentation links for the category.
	DocLinks []string `json:"documentation_links"`

	// Confidence is len(Results)/5 clamped to [0,1].
	Confidence float64 `json:"grounding_confidence"`
}
