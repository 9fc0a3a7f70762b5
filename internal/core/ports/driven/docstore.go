package driven

import (
	"context"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// DocumentIndex is the offline document store. Backed by SQLite for
// persistent storage; a memory implementation exists for tests and
// ephemeral runs.
//
// Insertion is append-only: indexing the same document twice produces
// two retrievable copies. Matching is a case-insensitive substring
// test against title or content.
type DocumentIndex interface {
	// IndexDocuments appends a batch of documents. Writes are
	// mutually exclusive with each other.
	IndexDocuments(ctx context.Context, docs []domain.IndexedDocument) error

	// Retrieve returns up to topK documents matching the query,
	// most-recently-indexed first (descending identifier, not
	// textual relevance). An empty category disables the category
	// filter. Retrieval consults a content-addressed result cache
	// and populates it on miss. An empty or uninitialised index
	// yields an empty slice, never an error.
	Retrieve(ctx context.Context, query string, category domain.Category, topK int) ([]domain.IndexedDocument, error)

	// Close releases the underlying storage.
	Close() error
}
