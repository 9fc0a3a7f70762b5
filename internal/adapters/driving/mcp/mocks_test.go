package mcp

import (
	"context"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// mockAssistantService is a mock implementation of
// driving.AssistantService.
type mockAssistantService struct {
	resp *domain.Response
	err  error
}

func (m *mockAssistantService) Answer(_ context.Context, _ domain.QueryRequest) (*domain.Response, error) {
	return m.resp, m.err
}

// mockDebugService is a mock implementation of driving.DebugService.
type mockDebugService struct {
	diag domain.ErrorDiagnosis
}

func (m *mockDebugService) Diagnose(_, _ string) domain.ErrorDiagnosis {
	return m.diag
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	docs []domain.IndexedDocument
	err  error
}

func (m *mockIndexService) IndexDocuments(_ context.Context, _ []domain.IndexedDocument) error {
	return m.err
}

func (m *mockIndexService) Retrieve(_ context.Context, _ string, _ domain.Category, topK int) ([]domain.IndexedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.docs) > topK {
		return m.docs[:topK], nil
	}
	return m.docs, nil
}
