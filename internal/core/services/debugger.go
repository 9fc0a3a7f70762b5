package services

import (
	"strings"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Ensure Debugger implements the interface.
var _ driving.DebugService = (*Debugger)(nil)

// subSignature is a second-level match token within an exception
// class. An empty token matches any log containing the class.
type subSignature struct {
	token     string
	diagnosis domain.ErrorDiagnosis
}

// signatureEntry is one exception class with its ordered
// sub-signatures.
type signatureEntry struct {
	class string
	subs  []subSignature
}

// errorSignatures is the two-level exact-substring signature table.
// It is extendable without changing the matching algorithm; order is
// significant so matches stay deterministic.
var errorSignatures = []signatureEntry{
	{
		class: "nullreferenceexception",
		subs: []subSignature{
			{
				token: "teleportationprovider",
				diagnosis: domain.ErrorDiagnosis{
					ErrorType: "NullReferenceException",
					Analysis:  "TeleportationProvider component is not assigned",
					Fix:       "Assign TeleportationProvider in the Inspector or via script",
					CodeFix:   "teleportProvider = FindObjectOfType<TeleportationProvider>();",
					PreventionTips: []string{
						"Always check for null references",
						"Use [RequireComponent] attribute",
					},
				},
			},
		},
	},
	{
		class: "missingcomponentexception",
		subs: []subSignature{
			{
				token: "",
				diagnosis: domain.ErrorDiagnosis{
					ErrorType: "MissingComponentException",
					Analysis:  "Required component is missing from GameObject",
					Fix:       "Add the missing component via Inspector or AddComponent<T>()",
					CodeFix:   "gameObject.AddComponent<RequiredComponent>();",
					PreventionTips: []string{
						"Use [RequireComponent] attribute",
						"Validate components in OnValidate()",
					},
				},
			},
		},
	},
}

// genericDiagnosis is returned when no signature matches.
var genericDiagnosis = domain.ErrorDiagnosis{
	ErrorType: domain.UnknownErrorType,
	Analysis:  "Check Unity Console for detailed error information",
	Fix:       "Review stack trace and add proper null checks",
	CodeFix:   "// Add appropriate error handling here",
	PreventionTips: []string{
		"Enable detailed logging",
		"Use try-catch blocks",
	},
}

// Debugger matches error logs against known failure signatures.
// It is state-free and never fails.
type Debugger struct{}

// NewDebugger creates a new error signature matcher.
func NewDebugger() *Debugger {
	return &Debugger{}
}

// Diagnose lowercases the log and walks the signature table: a log
// matching an exception class and one of its sub-signature tokens
// returns the pre-authored diagnosis. Anything else degrades to the
// generic "Unknown" diagnosis.
func (d *Debugger) Diagnose(errorLog, errContext string) domain.ErrorDiagnosis {
	lowered := strings.ToLower(errorLog)

	if errContext != "" {
		logger.Debug("Diagnosis context: %q", errContext)
	}

	for _, entry := range errorSignatures {
		if !strings.Contains(lowered, entry.class) {
			continue
		}
		for _, sub := range entry.subs {
			if sub.token == "" || strings.Contains(lowered, sub.token) {
				logger.Info("Matched signature %s/%s", entry.class, sub.token)
				return sub.diagnosis
			}
		}
	}

	logger.Debug("No signature matched, returning generic diagnosis")
	return genericDiagnosis
}
