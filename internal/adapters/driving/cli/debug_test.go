package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestDebugCmd_Use(t *testing.T) {
	assert.Equal(t, "debug [error log]", debugCmd.Use)
}

func TestDebugCmd_MatchesKnownSignature(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"debug", "NullReferenceException: TeleportationProvider not assigned"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "NullReferenceException")
	assert.Contains(t, out, "Fix")
	assert.Contains(t, out, "Prevention")
}

func TestDebugCmd_UnknownLog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"debug", "--json", "Segmentation fault at 0x0000"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	var diag domain.ErrorDiagnosis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &diag))
	assert.Equal(t, domain.UnknownErrorType, diag.ErrorType)
}
