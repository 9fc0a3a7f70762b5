package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// actionableVerbs are the verbs a subtask description must contain.
var actionableVerbs = []string{"create", "add", "configure", "setup", "implement", "install"}

// timeUnits are the recognised units for the estimated time field.
var timeUnits = []string{"minute", "hour", "day", "week"}

// Validator enforces the response schema's structural and semantic
// invariants. It is the terminal pipeline stage: it rejects invalid
// responses rather than coercing them into validity.
type Validator struct{}

// NewValidator creates a new response validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks every schema rule in order and returns a
// *domain.ValidationError identifying the first violated field, or
// nil when the response is valid.
func (v *Validator) Validate(resp *domain.Response) error {
	if resp.Query == "" {
		return &domain.ValidationError{Field: "query", Message: "must not be empty"}
	}

	if !resp.Category.Valid() {
		return &domain.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("%q is not a valid category", resp.Category),
		}
	}

	if len(resp.SubTasks) < domain.MinSubTasks || len(resp.SubTasks) > domain.MaxSubTasks {
		return &domain.ValidationError{
			Field: "subtasks",
			Message: fmt.Sprintf("need %d-%d subtasks, got %d",
				domain.MinSubTasks, domain.MaxSubTasks, len(resp.SubTasks)),
		}
	}
	for i, task := range resp.SubTasks {
		if !containsActionableVerb(task.Description) {
			return &domain.ValidationError{
				Field:   "subtasks",
				Message: fmt.Sprintf("subtask %d description lacks an actionable verb", i+1),
			}
		}
	}

	if len(resp.CodeSnippet) < domain.MinCodeSnippet {
		return &domain.ValidationError{
			Field: "code_snippet",
			Message: fmt.Sprintf("must be at least %d characters, got %d",
				domain.MinCodeSnippet, len(resp.CodeSnippet)),
		}
	}

	if len(resp.BestPractices) < domain.MinBestPractices || len(resp.BestPractices) > domain.MaxBestPractices {
		return &domain.ValidationError{
			Field: "best_practices",
			Message: fmt.Sprintf("need %d-%d items, got %d",
				domain.MinBestPractices, domain.MaxBestPractices, len(resp.BestPractices)),
		}
	}
	for i, practice := range resp.BestPractices {
		if len(practice) < domain.MinPracticeLen {
			return &domain.ValidationError{
				Field:   "best_practices",
				Message: fmt.Sprintf("item %d must be at least %d characters", i+1, domain.MinPracticeLen),
			}
		}
	}

	if len(resp.Gotchas) < domain.MinGotchas || len(resp.Gotchas) > domain.MaxGotchas {
		return &domain.ValidationError{
			Field: "gotchas",
			Message: fmt.Sprintf("need %d-%d items, got %d",
				domain.MinGotchas, domain.MaxGotchas, len(resp.Gotchas)),
		}
	}
	for i, gotcha := range resp.Gotchas {
		if len(gotcha) < domain.MinGotchaLen {
			return &domain.ValidationError{
				Field:   "gotchas",
				Message: fmt.Sprintf("item %d must be at least %d characters", i+1, domain.MinGotchaLen),
			}
		}
	}

	if resp.DifficultyRating < domain.MinDifficulty || resp.DifficultyRating > domain.MaxDifficulty {
		return &domain.ValidationError{
			Field: "difficulty_rating",
			Message: fmt.Sprintf("must be %d-%d, got %d",
				domain.MinDifficulty, domain.MaxDifficulty, resp.DifficultyRating),
		}
	}

	if len(resp.DocumentationLinks) < domain.MinDocLinks || len(resp.DocumentationLinks) > domain.MaxDocLinks {
		return &domain.ValidationError{
			Field: "documentation_links",
			Message: fmt.Sprintf("need %d-%d links, got %d",
				domain.MinDocLinks, domain.MaxDocLinks, len(resp.DocumentationLinks)),
		}
	}
	for i, link := range resp.DocumentationLinks {
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			return &domain.ValidationError{
				Field:   "documentation_links",
				Message: fmt.Sprintf("link %d is not an absolute http(s) URL", i+1),
			}
		}
	}

	if !containsTimeUnit(resp.EstimatedTime) {
		return &domain.ValidationError{
			Field:   "estimated_time",
			Message: "must contain a recognised time unit (minute/hour/day/week)",
		}
	}

	return nil
}

// containsActionableVerb reports whether the description includes one
// of the recognised actionable verbs.
func containsActionableVerb(description string) bool {
	lowered := strings.ToLower(description)
	for _, verb := range actionableVerbs {
		if strings.Contains(lowered, verb) {
			return true
		}
	}
	return false
}

// containsTimeUnit reports whether the estimate names a time unit.
func containsTimeUnit(estimate string) bool {
	lowered := strings.ToLower(estimate)
	for _, unit := range timeUnits {
		if strings.Contains(lowered, unit) {
			return true
		}
	}
	return false
}
