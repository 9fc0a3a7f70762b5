package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

func TestDebugger_Diagnose(t *testing.T) {
	d := NewDebugger()

	t.Run("matches teleportation provider null reference", func(t *testing.T) {
		diag := d.Diagnose("NullReferenceException: TeleportationProvider not assigned", "")

		assert.Equal(t, "NullReferenceException", diag.ErrorType)
		assert.Contains(t, diag.Analysis, "TeleportationProvider")
		assert.Contains(t, diag.CodeFix, "FindObjectOfType")
		assert.NotEmpty(t, diag.PreventionTips)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		diag := d.Diagnose("NULLREFERENCEEXCEPTION: TELEPORTATIONPROVIDER", "")
		assert.Equal(t, "NullReferenceException", diag.ErrorType)
	})

	t.Run("class without sub token falls through to generic", func(t *testing.T) {
		// NullReferenceException alone has no wildcard sub-signature.
		diag := d.Diagnose("NullReferenceException: object reference not set", "")
		assert.Equal(t, domain.UnknownErrorType, diag.ErrorType)
	})

	t.Run("missing component matches on class alone", func(t *testing.T) {
		diag := d.Diagnose("MissingComponentException: There is no 'Rigidbody' attached", "")

		assert.Equal(t, "MissingComponentException", diag.ErrorType)
		assert.Contains(t, diag.CodeFix, "AddComponent")
	})

	t.Run("unmatched log returns generic diagnosis", func(t *testing.T) {
		diag := d.Diagnose("Segmentation fault at 0x0000", "crashed on startup")

		assert.Equal(t, domain.UnknownErrorType, diag.ErrorType)
		assert.NotEmpty(t, diag.Analysis)
		assert.NotEmpty(t, diag.Fix)
		assert.NotEmpty(t, diag.PreventionTips)
	})

	t.Run("empty log returns generic diagnosis", func(t *testing.T) {
		diag := d.Diagnose("", "")
		assert.Equal(t, domain.UnknownErrorType, diag.ErrorType)
	})
}
