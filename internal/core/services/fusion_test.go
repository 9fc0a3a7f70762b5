package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
)

func TestExtractSentences(t *testing.T) {
	t.Run("keeps only trigger sentences", func(t *testing.T) {
		results := []domain.SearchResult{{
			Content: "You should bake the NavMesh first. The sky is blue. Always test on device.",
		}}

		extracted := extractSentences(results, practiceTriggers, 6)
		require.Len(t, extracted, 2)
		assert.Equal(t, "You should bake the NavMesh first", extracted[0])
		assert.Equal(t, "Always test on device", extracted[1])
	})

	t.Run("stops at the cap", func(t *testing.T) {
		results := []domain.SearchResult{{
			Content: "You should a. You should b. You should c. You should d.",
		}}

		extracted := extractSentences(results, practiceTriggers, 2)
		assert.Len(t, extracted, 2)
	})

	t.Run("scans at most three results", func(t *testing.T) {
		results := []domain.SearchResult{
			{Content: "nothing here"},
			{Content: "nothing here"},
			{Content: "nothing here"},
			{Content: "You should never see this sentence."},
		}

		assert.Empty(t, extractSentences(results, practiceTriggers, 6))
	})

	t.Run("trigger matching is case insensitive", func(t *testing.T) {
		results := []domain.SearchResult{{Content: "AVOID deep recursion in shaders."}}
		assert.Len(t, extractSentences(results, gotchaTriggers, 5), 1)
	})

	t.Run("empty results yield nothing", func(t *testing.T) {
		assert.Empty(t, extractSentences(nil, practiceTriggers, 6))
	})
}

func TestGrounder_Ground(t *testing.T) {
	ctx := context.Background()

	t.Run("fuses search passes", func(t *testing.T) {
		provider := &mockProvider{
			name: "p",
			resp: domain.RawResponse("You should test on device. Avoid deep hierarchies. Plain filler text."),
		}
		g := NewGrounder(NewAggregator([]driven.SearchProvider{provider}, time.Second))

		grounding := g.Ground(ctx, "teleport setup question", domain.CategoryUnity)

		require.NotNil(t, grounding)
		assert.NotEmpty(t, grounding.Results)
		assert.NotEmpty(t, grounding.BestPractices)
		assert.NotEmpty(t, grounding.Gotchas)
		assert.Equal(t, officialDocLinks[domain.CategoryUnity], grounding.DocLinks)
	})

	t.Run("confidence scales with primary results", func(t *testing.T) {
		// A raw response normalises to exactly one result per branch;
		// two branches give two primary results.
		provider := &mockProvider{name: "p", resp: domain.RawResponse("some text")}
		g := NewGrounder(NewAggregator([]driven.SearchProvider{provider}, time.Second))

		grounding := g.Ground(ctx, "teleport setup question", domain.CategoryUnity)
		assert.InDelta(t, 0.4, grounding.Confidence, 0.001)
	})

	t.Run("failed search grounds to empty with zero confidence", func(t *testing.T) {
		provider := &mockProvider{name: "p", err: errors.New("network down")}
		g := NewGrounder(NewAggregator([]driven.SearchProvider{provider}, time.Second))

		grounding := g.Ground(ctx, "teleport setup question", domain.CategoryUnity)

		require.NotNil(t, grounding)
		assert.Empty(t, grounding.Results)
		assert.Empty(t, grounding.BestPractices)
		assert.Empty(t, grounding.Gotchas)
		assert.Zero(t, grounding.Confidence)
		assert.NotEmpty(t, grounding.DocLinks)
	})
}

func TestGrounder_Backfill(t *testing.T) {
	g := NewGrounder(NewAggregator(nil, time.Second))

	t.Run("pads an empty response to schema minimums", func(t *testing.T) {
		resp := &domain.Response{
			Query:    "how do I get started with all this?",
			Category: domain.CategoryGeneral,
		}

		g.Backfill(resp)

		assert.GreaterOrEqual(t, len(resp.SubTasks), domain.MinSubTasks)
		assert.GreaterOrEqual(t, len(resp.CodeSnippet), domain.MinCodeSnippet)
		assert.GreaterOrEqual(t, len(resp.BestPractices), domain.MinBestPractices)
		assert.GreaterOrEqual(t, len(resp.Gotchas), domain.MinGotchas)
		assert.GreaterOrEqual(t, len(resp.DocumentationLinks), domain.MinDocLinks)
	})

	t.Run("backfilled response passes validation", func(t *testing.T) {
		resp := &domain.Response{
			Query:            "how do I get started with all this?",
			Category:         domain.CategoryGeneral,
			DifficultyRating: 3,
			EstimatedTime:    "1-3 hours",
		}

		g.Backfill(resp)
		assert.NoError(t, NewValidator().Validate(resp))
	})

	t.Run("full response is untouched", func(t *testing.T) {
		resp := validResponse()
		before := len(resp.SubTasks)

		g.Backfill(resp)

		assert.Len(t, resp.SubTasks, before)
		assert.Len(t, resp.BestPractices, 3)
	})

	t.Run("does not duplicate existing doc links", func(t *testing.T) {
		link := officialDocLinks[domain.CategoryUnity][0]
		resp := &domain.Response{
			Query:              "teleport question for unity users",
			Category:           domain.CategoryUnity,
			DocumentationLinks: []string{link},
		}

		g.Backfill(resp)

		seen := 0
		for _, l := range resp.DocumentationLinks {
			if l == link {
				seen++
			}
		}
		assert.Equal(t, 1, seen)
	})
}
