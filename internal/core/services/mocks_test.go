package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// mockProvider is a mock implementation of driven.SearchProvider.
// Call counting is mutex-guarded because search branches run
// concurrently.
type mockProvider struct {
	name string
	resp domain.ProviderResponse
	err  error

	mu      sync.Mutex
	queries []string
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Search(_ context.Context, query string) (domain.ProviderResponse, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.err != nil {
		return domain.ProviderResponse{}, m.err
	}
	return m.resp, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

// mockDocumentIndex is a mock implementation of driven.DocumentIndex.
type mockDocumentIndex struct {
	docs    []domain.IndexedDocument
	indexed []domain.IndexedDocument
	err     error
}

func (m *mockDocumentIndex) IndexDocuments(_ context.Context, docs []domain.IndexedDocument) error {
	if m.err != nil {
		return m.err
	}
	m.indexed = append(m.indexed, docs...)
	return nil
}

func (m *mockDocumentIndex) Retrieve(_ context.Context, _ string, _ domain.Category, topK int) ([]domain.IndexedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.docs) > topK {
		return m.docs[:topK], nil
	}
	return m.docs, nil
}

func (m *mockDocumentIndex) Close() error {
	return nil
}
