package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/core/services"
)

// stubConfigStore is an in-memory driven.ConfigStore for command
// tests.
type stubConfigStore struct {
	values map[string]any
}

func newStubConfigStore() *stubConfigStore {
	return &stubConfigStore{values: make(map[string]any)}
}

func (s *stubConfigStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *stubConfigStore) GetString(key string) string {
	v, _ := s.values[key].(string)
	return v
}

func (s *stubConfigStore) Set(key string, value any) error {
	s.values[key] = value
	return nil
}

func (s *stubConfigStore) Load() error { return nil }

// resetCommandFlags clears flag-bound package vars that persist
// between command executions in the same process.
func resetCommandFlags() {
	askCategory = ""
	askBackend = ""
	askJSON = false
	debugContext = ""
	debugJSON = false
	indexAddCategory = "General"
	indexSearchCategory = ""
	indexSearchLimit = 5
	indexSearchJSON = false
	indexWatchCategory = "General"
}

// setupTestServices wires the commands to an offline pipeline backed
// by the in-memory document index. Returns a restore func.
func setupTestServices() func() {
	resetCommandFlags()

	prevAssistant := assistantService
	prevDebug := debugService
	prevIndex := indexService
	prevConfig := configStore
	prevDocIndex := documentIndex

	idx := memory.NewDocumentIndex()
	idx.IndexDocuments(context.Background(), services.SeedDocuments()) //nolint:errcheck

	var providers []driven.SearchProvider
	aggregator := services.NewAggregator(providers, time.Second)

	assistantService = services.NewAssistant(
		services.NewClassifier(),
		services.NewSelector(),
		services.NewGrounder(aggregator),
		services.NewValidator(),
		idx,
	)
	debugService = services.NewDebugger()
	indexService = services.NewIndexService(idx)
	configStore = newStubConfigStore()
	documentIndex = idx

	return func() {
		resetCommandFlags()
		assistantService = prevAssistant
		debugService = prevDebug
		indexService = prevIndex
		configStore = prevConfig
		documentIndex = prevDocIndex
	}
}

// testMemoryIndex returns the in-memory index behind the wired
// services, for assertions on indexed state.
func testMemoryIndex() *memory.DocumentIndex {
	idx, _ := documentIndex.(*memory.DocumentIndex)
	return idx
}
