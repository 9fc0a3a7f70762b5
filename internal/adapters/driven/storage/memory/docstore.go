// Package memory provides in-memory adapter implementations for
// tests and ephemeral runs.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
)

// Ensure DocumentIndex implements the interface.
var _ driven.DocumentIndex = (*DocumentIndex)(nil)

// DocumentIndex is an in-memory implementation of the offline
// document index. It mirrors the SQLite adapter's semantics:
// append-only, case-insensitive substring matching, newest first.
// It does not persist a retrieval cache; lookups are already cheap.
type DocumentIndex struct {
	mu     sync.RWMutex
	docs   []domain.IndexedDocument
	nextID int64
}

// NewDocumentIndex creates an empty in-memory index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{nextID: 1}
}

// IndexDocuments appends a batch of documents, assigning
// monotonically increasing identifiers.
func (m *DocumentIndex) IndexDocuments(_ context.Context, docs []domain.IndexedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for _, doc := range docs {
		doc.ID = m.nextID
		m.nextID++
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		m.docs = append(m.docs, doc)
	}
	return nil
}

// Retrieve returns up to topK matching documents, descending by
// identifier. An empty index yields an empty slice.
func (m *DocumentIndex) Retrieve(_ context.Context, query string, category domain.Category, topK int) ([]domain.IndexedDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if topK <= 0 {
		return []domain.IndexedDocument{}, nil
	}

	lowered := strings.ToLower(query)
	matched := []domain.IndexedDocument{}

	// Walk newest-first so the limit keeps the highest identifiers.
	for i := len(m.docs) - 1; i >= 0 && len(matched) < topK; i-- {
		doc := m.docs[i]
		if category != "" && doc.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(doc.Title), lowered) &&
			!strings.Contains(strings.ToLower(doc.Content), lowered) {
			continue
		}
		doc.Similarity = domain.PlaceholderSimilarity
		matched = append(matched, doc)
	}

	return matched, nil
}

// Close is a no-op for the in-memory index.
func (m *DocumentIndex) Close() error {
	return nil
}

// Len reports the number of stored documents. Test helper.
func (m *DocumentIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
