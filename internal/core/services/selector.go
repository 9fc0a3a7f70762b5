package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Selector maps (category, query) to a canonical answer template and
// assembles the static portion of a response. It has no side effects.
type Selector struct{}

// NewSelector creates a new static knowledge selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the template for the category, or nil for General
// (which has no static template). Unity scans its topic keys and
// picks the first appearing as a substring of the lowered query,
// defaulting to "teleport". Unreal and Shader are single-topic and
// query-independent.
func (s *Selector) Select(category domain.Category, query string) *Template {
	switch category {
	case domain.CategoryUnity:
		lowered := strings.ToLower(query)
		topic := unityTopics[0]
		for _, key := range unityTopics {
			if strings.Contains(lowered, key) {
				topic = key
				break
			}
		}
		tpl := unityKnowledge[topic]
		logger.Debug("Selected Unity topic %q", topic)
		return &tpl

	case domain.CategoryUnreal:
		tpl := unrealKnowledge["multiplayer"]
		return &tpl

	case domain.CategoryShader:
		tpl := shaderKnowledge["occlusion"]
		return &tpl
	}

	return nil
}

// Respond builds the static response for a query. For General it is
// the fixed onboarding answer; for the other categories the selected
// template with the derived difficulty and time estimate.
func (s *Selector) Respond(query string, category domain.Category) *domain.Response {
	tpl := s.Select(category, query)
	if tpl == nil {
		logger.Debug("No static template for %s, using general response", category)
		return generalResponse(query)
	}

	subtasks := make([]domain.SubTask, len(tpl.SubTasks))
	for i, task := range tpl.SubTasks {
		subtasks[i] = task
		if subtasks[i].Explanation == "" {
			subtasks[i].Explanation = fmt.Sprintf(
				"This step is essential for %s", strings.ToLower(task.Description))
		}
	}

	return &domain.Response{
		Query:              query,
		Category:           category,
		SubTasks:           subtasks,
		CodeSnippet:        tpl.MainCode,
		BestPractices:      append([]string(nil), tpl.BestPractices...),
		Gotchas:            append([]string(nil), tpl.Gotchas...),
		DifficultyRating:   difficultyFor(category),
		DocumentationLinks: append([]string(nil), tpl.DocLinks...),
		EstimatedTime:      estimatedTimeFor(category),
	}
}

// difficultyFor derives the difficulty rating by the fixed rule:
// Shader 4, everything else on a static template 3.
func difficultyFor(category domain.Category) int {
	if category == domain.CategoryShader {
		return 4
	}
	return 3
}

// estimatedTimeFor derives the time estimate: Unreal "3-6 hours",
// everything else "1-3 hours".
func estimatedTimeFor(category domain.Category) string {
	if category == domain.CategoryUnreal {
		return "3-6 hours"
	}
	return "1-3 hours"
}
