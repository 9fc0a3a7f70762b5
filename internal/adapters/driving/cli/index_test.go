package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestIndexSeedCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	before := testMemoryIndex().Len()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "seed"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed 3 sample documents")
	assert.Equal(t, before+3, testMemoryIndex().Len())
}

func TestIndexSearchCmd_FindsSeededDocs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "search", "--json", "teleportation"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	var docs []domain.IndexedDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.NotEmpty(t, docs)
	assert.Contains(t, docs[0].Title, "Teleportation")
}

func TestIndexSearchCmd_NoMatches(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "search", "zzz-no-such-topic"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No matching documents")
}

func TestIndexAddCmd_IndexesMarkdownFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hand-tracking.md"), []byte("Hand tracking notes"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.bin"), []byte{0x01}, 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "add", "--category", "Unity", dir})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed 1 documents")
}

func TestIndexAddCmd_RejectsUnknownCategory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index", "add", "--category", "Godot", t.TempDir()})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCollectDocuments_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "occlusion-notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("ZWrite On, ColorMask 0"), 0600))

	docs, err := collectDocuments(path, domain.CategoryShader)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "occlusion-notes", docs[0].Title)
	assert.Equal(t, "ZWrite On, ColorMask 0", docs[0].Content)
	assert.Equal(t, path, docs[0].Source)
	assert.Equal(t, domain.CategoryShader, docs[0].Category)
}
