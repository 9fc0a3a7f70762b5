package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesCmd_ListsAll(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"categories"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Unity")
	assert.Contains(t, out, "Unreal")
	assert.Contains(t, out, "Shader")
	assert.Contains(t, out, "General")
	assert.Contains(t, out, "teleport locomotion")
	assert.Contains(t, out, "Choosing between Unity and Unreal")
}
