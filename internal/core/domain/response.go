package domain

// Response schema bounds. A response that violates any of these is
// rejected by the validator before emission.
const (
	MinSubTasks      = 3
	MaxSubTasks      = 8
	MinCodeSnippet   = 50
	MinBestPractices = 3
	MaxBestPractices = 10
	MinPracticeLen   = 10
	MinGotchas       = 2
	MaxGotchas       = 8
	MinGotchaLen     = 15
	MinDifficulty    = 1
	MaxDifficulty    = 5
	MinDocLinks      = 2
	MaxDocLinks      = 6
)

// SubTask is one ordered step in a response breakdown.
type SubTask struct {
	// Description is the actionable step text. It must contain one
	// of the recognised actionable verbs.
	Description string `json:"description"`

	// CodeSnippet is an optional ready-to-paste snippet for this step.
	CodeSnippet string `json:"code_snippet,omitempty"`

	// Explanation is an optional rationale for the step.
	Explanation string `json:"explanation,omitempty"`
}

// Response is the validated, grounded answer to a developer query.
// All list fields are ordered by descending relevance as produced by
// retrieval fusion.
type Response struct {
	// Query is the original developer query, verbatim.
	Query string `json:"query"`

	// Category is the platform classification.
	Category Category `json:"category"`

	// SubTasks is the ordered step-by-step breakdown (3-8 steps).
	SubTasks []SubTask `json:"subtasks"`

	// CodeSnippet is the primary implementation (>= 50 chars).
	CodeSnippet string `json:"code_snippet"`

	// BestPractices holds 3-10 recommendations, each >= 10 chars.
	BestPractices []string `json:"best_practices"`

	// Gotchas holds 2-8 pitfalls, each >= 15 chars.
	Gotchas []string `json:"gotchas"`

	// DifficultyRating is 1 (beginner) to 5 (expert).
	DifficultyRating int `json:"difficulty_rating"`

	// DocumentationLinks holds 2-6 absolute http(s) URLs.
	DocumentationLinks []string `json:"documentation_links"`

	// EstimatedTime is a human estimate containing a recognised
	// time unit (minute/hour/day/week).
	EstimatedTime string `json:"estimated_time"`
}
