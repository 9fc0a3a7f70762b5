package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// defaultRetrieveLimit is used when callers pass a non-positive topK.
const defaultRetrieveLimit = 5

// IndexService exposes the offline document index to inbound
// adapters.
type IndexService struct {
	index driven.DocumentIndex
}

// NewIndexService creates an index service. The index may be nil, in
// which case operations report ErrIndexUnavailable.
func NewIndexService(index driven.DocumentIndex) *IndexService {
	return &IndexService{index: index}
}

// IndexDocuments appends documents to the offline index.
func (s *IndexService) IndexDocuments(ctx context.Context, docs []domain.IndexedDocument) error {
	if s.index == nil {
		return domain.ErrIndexUnavailable
	}
	if len(docs) == 0 {
		return nil
	}
	if err := s.index.IndexDocuments(ctx, docs); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}
	logger.Info("Indexed %d documents", len(docs))
	return nil
}

// Retrieve returns up to topK matching documents, most recently
// indexed first.
func (s *IndexService) Retrieve(ctx context.Context, query string, category domain.Category, topK int) ([]domain.IndexedDocument, error) {
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if topK <= 0 {
		topK = defaultRetrieveLimit
	}
	docs, err := s.index.Retrieve(ctx, query, category, topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve documents: %w", err)
	}
	return docs, nil
}
