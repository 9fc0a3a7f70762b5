package driving

import (
	"context"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// AssistantService answers developer queries with grounded,
// schema-valid responses.
type AssistantService interface {
	// Answer runs the full pipeline: input validation,
	// classification, static knowledge selection, grounding,
	// backfill and schema validation. On failure it returns a
	// *domain.PipelineError describing the problem.
	Answer(ctx context.Context, req domain.QueryRequest) (*domain.Response, error)
}

// DebugService diagnoses runtime error logs against the known
// failure signatures.
type DebugService interface {
	// Diagnose matches an error log. It is total: unmatched input
	// degrades to the generic "Unknown" diagnosis.
	Diagnose(errorLog, errContext string) domain.ErrorDiagnosis
}

// IndexService manages the offline document index.
type IndexService interface {
	// IndexDocuments appends documents to the offline index.
	IndexDocuments(ctx context.Context, docs []domain.IndexedDocument) error

	// Retrieve returns up to topK matching documents,
	// most-recently-indexed first.
	Retrieve(ctx context.Context, query string, category domain.Category, topK int) ([]domain.IndexedDocument, error)
}
