package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// offlineRetrievalLimit bounds the supplemental offline lookup per
// query.
const offlineRetrievalLimit = 3

// Assistant orchestrates the grounding pipeline: classification,
// static knowledge selection, retrieval fusion, backfill and schema
// validation.
type Assistant struct {
	classifier *Classifier
	selector   *Selector
	grounder   *Grounder
	validator  *Validator
	index      driven.DocumentIndex // optional, may be nil
}

// NewAssistant creates the pipeline orchestrator. The document index
// is optional: when nil or unreachable, offline retrieval is skipped
// rather than failing the request.
func NewAssistant(
	classifier *Classifier,
	selector *Selector,
	grounder *Grounder,
	validator *Validator,
	index driven.DocumentIndex,
) *Assistant {
	return &Assistant{
		classifier: classifier,
		selector:   selector,
		grounder:   grounder,
		validator:  validator,
		index:      index,
	}
}

// Answer runs the full pipeline for one query request.
func (a *Assistant) Answer(ctx context.Context, req domain.QueryRequest) (*domain.Response, error) {
	requestID := uuid.NewString()
	logger.Section("Query " + requestID)
	logger.Debug("Query: %q, hint: %q, backend: %q", req.Query, req.Category, req.Backend)

	if err := req.Validate(); err != nil {
		return nil, &domain.PipelineError{
			Message: err.Error(),
			Code:    "INVALID_INPUT",
			Suggestions: []string{
				"Provide a query between 10 and 500 characters",
				"Use one of the categories: Unity, Unreal, Shader, General",
			},
		}
	}

	category := req.Category
	if category == "" {
		category = a.classifier.Classify(req.Query)
	}
	logger.Info("Category: %s", category)

	resp := a.selector.Respond(req.Query, category)

	grounding := a.grounder.Ground(ctx, req.Query, category)
	mergeGrounding(resp, grounding)

	a.mergeOfflineDocs(ctx, resp, req.Query, category)

	a.grounder.Backfill(resp)

	if err := a.validator.Validate(resp); err != nil {
		logger.Warn("Assembled response failed validation: %v", err)
		return nil, &domain.PipelineError{
			Message: err.Error(),
			Code:    "VALIDATION_FAILED",
			Suggestions: []string{
				"Retry the query; grounding content varies between runs",
				"Report the query if the failure persists",
			},
		}
	}

	logger.Info("Response assembled: %d subtasks, confidence %.2f", len(resp.SubTasks), grounding.Confidence)
	return resp, nil
}

// mergeGrounding folds the fused retrieval payload into the static
// response. Grounded items rank first; template items follow. Items
// below the schema's per-item minimum length are dropped here so the
// merge can never push a valid draft into invalidity.
func mergeGrounding(resp *domain.Response, grounding *domain.Grounding) {
	var practices []string
	for _, p := range grounding.BestPractices {
		if len(p) >= domain.MinPracticeLen {
			practices = append(practices, p)
		}
	}
	resp.BestPractices = capList(dedupe(append(practices, resp.BestPractices...)), domain.MaxBestPractices)

	var gotchas []string
	for _, g := range grounding.Gotchas {
		if len(g) >= domain.MinGotchaLen {
			gotchas = append(gotchas, g)
		}
	}
	resp.Gotchas = capList(dedupe(append(gotchas, resp.Gotchas...)), domain.MaxGotchas)

	// Topic-specific template links stay first; category-level
	// official links fill the remaining slots.
	links := append(append([]string(nil), resp.DocumentationLinks...), grounding.DocLinks...)
	resp.DocumentationLinks = capList(dedupe(links), domain.MaxDocLinks)
}

// mergeOfflineDocs retrieves supplemental context from the offline
// index. An unreachable index degrades to skipping the step.
func (a *Assistant) mergeOfflineDocs(ctx context.Context, resp *domain.Response, query string, category domain.Category) {
	if a.index == nil {
		logger.Debug("No offline index configured, skipping retrieval")
		return
	}

	docs, err := a.index.Retrieve(ctx, query, category, offlineRetrievalLimit)
	if err != nil {
		logger.Warn("Offline retrieval failed, continuing without it: %v", err)
		return
	}
	if len(docs) == 0 {
		return
	}
	logger.Info("Offline index contributed %d documents", len(docs))

	links := append([]string(nil), resp.DocumentationLinks...)
	for _, doc := range docs {
		if strings.HasPrefix(doc.URL, "http://") || strings.HasPrefix(doc.URL, "https://") {
			links = append(links, doc.URL)
		}
	}
	resp.DocumentationLinks = capList(dedupe(links), domain.MaxDocLinks)
}

// dedupe removes exact duplicates preserving first occurrence order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// capList truncates a list to at most n items.
func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
