package domain

import "fmt"

// Category is the platform classification of a query.
type Category string

// Valid categories, in classification priority order.
const (
	CategoryUnity   Category = "Unity"
	CategoryUnreal  Category = "Unreal"
	CategoryShader  Category = "Shader"
	CategoryGeneral Category = "General"
)

// Categories lists all valid categories in priority order.
// The order matters: classification ties resolve toward the
// earlier category.
var Categories = []Category{
	CategoryUnity,
	CategoryUnreal,
	CategoryShader,
	CategoryGeneral,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryUnity, CategoryUnreal, CategoryShader, CategoryGeneral:
		return true
	}
	return false
}

// ParseCategory converts a string into a Category.
// Returns ErrInvalidInput for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
	}
	return c, nil
}

// Query length bounds enforced before the pipeline runs.
const (
	MinQueryLength = 10
	MaxQueryLength = 500
)

// QueryRequest is the inbound query object consumed by the pipeline.
// It is immutable once received.
type QueryRequest struct {
	// Query is the developer's free-text question.
	Query string `json:"query"`

	// Category is an optional hint. When empty, the classifier
	// derives the category from the query text.
	Category Category `json:"category,omitempty"`

	// Backend is an optional generator-backend preference. The
	// pipeline treats generation as pluggable and records the
	// preference without interpreting it.
	Backend string `json:"generator_backend,omitempty"`
}

// Validate checks the transport-level constraints on the request.
func (r QueryRequest) Validate() error {
	if len(r.Query) < MinQueryLength {
		return fmt.Errorf("%w: query must be at least %d characters", ErrInvalidInput, MinQueryLength)
	}
	if len(r.Query) > MaxQueryLength {
		return fmt.Errorf("%w: query must be at most %d characters", ErrInvalidInput, MaxQueryLength)
	}
	if r.Category != "" && !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, r.Category)
	}
	return nil
}
