package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestDocumentIndex_IndexDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns increasing identifiers", func(t *testing.T) {
		index := NewDocumentIndex()
		require.NoError(t, index.IndexDocuments(ctx, []domain.IndexedDocument{
			{Title: "first vr doc", Content: "vr"},
			{Title: "second vr doc", Content: "vr"},
		}))

		docs, err := index.Retrieve(ctx, "vr doc", "", 5)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Greater(t, docs[0].ID, docs[1].ID)
	})

	t.Run("duplicates accumulate", func(t *testing.T) {
		index := NewDocumentIndex()
		doc := domain.IndexedDocument{Title: "vr doc", Content: "vr"}
		require.NoError(t, index.IndexDocuments(ctx, []domain.IndexedDocument{doc}))
		require.NoError(t, index.IndexDocuments(ctx, []domain.IndexedDocument{doc}))

		assert.Equal(t, 2, index.Len())
	})
}

func TestDocumentIndex_Retrieve(t *testing.T) {
	ctx := context.Background()

	seed := []domain.IndexedDocument{
		{Title: "Unity Teleportation", Content: "XR teleport setup", Category: domain.CategoryUnity},
		{Title: "Unreal Multiplayer", Content: "pawn replication", Category: domain.CategoryUnreal},
	}

	t.Run("empty index yields empty slice", func(t *testing.T) {
		index := NewDocumentIndex()
		docs, err := index.Retrieve(ctx, "anything", "", 5)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("case insensitive substring match", func(t *testing.T) {
		index := NewDocumentIndex()
		require.NoError(t, index.IndexDocuments(ctx, seed))

		docs, err := index.Retrieve(ctx, "TELEPORT", "", 5)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Unity Teleportation", docs[0].Title)
		assert.Equal(t, domain.PlaceholderSimilarity, docs[0].Similarity)
	})

	t.Run("category filter", func(t *testing.T) {
		index := NewDocumentIndex()
		require.NoError(t, index.IndexDocuments(ctx, seed))

		docs, err := index.Retrieve(ctx, "n", domain.CategoryUnreal, 5)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, domain.CategoryUnreal, docs[0].Category)
	})

	t.Run("newest first with limit", func(t *testing.T) {
		index := NewDocumentIndex()
		require.NoError(t, index.IndexDocuments(ctx, []domain.IndexedDocument{
			{Title: "vr one", Content: "vr"},
			{Title: "vr two", Content: "vr"},
			{Title: "vr three", Content: "vr"},
		}))

		docs, err := index.Retrieve(ctx, "vr", "", 2)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "vr three", docs[0].Title)
		assert.Equal(t, "vr two", docs[1].Title)
	})

	t.Run("non-positive limit yields empty", func(t *testing.T) {
		index := NewDocumentIndex()
		require.NoError(t, index.IndexDocuments(ctx, seed))

		docs, err := index.Retrieve(ctx, "teleport", "", 0)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
