package services

import (
	"strings"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// categoryKeywords maps each scorable category to its keyword set.
// Matching is case-insensitive substring containment.
var categoryKeywords = map[domain.Category][]string{
	domain.CategoryUnity:  {"unity", "c#", "xr toolkit", "teleport", "vr", "ar", "interaction"},
	domain.CategoryUnreal: {"unreal", "c++", "ue4", "ue5", "blueprint", "multiplayer"},
	domain.CategoryShader: {"shader", "hlsl", "glsl", "material", "rendering", "occlusion"},
}

// classifierPriority fixes the evaluation order so score ties resolve
// deterministically toward the earlier category.
var classifierPriority = []domain.Category{
	domain.CategoryUnity,
	domain.CategoryUnreal,
	domain.CategoryShader,
}

// Classifier assigns a platform category to free query text.
type Classifier struct{}

// NewClassifier creates a new category classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the query against each category's keyword set and
// returns the highest-scoring category, or General when no keyword
// matches at all. It is pure and total: it never fails and repeated
// calls on the same input always agree.
func (c *Classifier) Classify(query string) domain.Category {
	lowered := strings.ToLower(query)

	best := domain.CategoryGeneral
	bestScore := 0

	for _, cat := range classifierPriority {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		// Strict > keeps the priority-order tie-break.
		if score > bestScore {
			best = cat
			bestScore = score
		}
	}

	logger.Debug("Classified %q as %s (score %d)", query, best, bestScore)
	return best
}
