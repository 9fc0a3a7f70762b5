package domain

// UnknownErrorType is the error type reported when no signature
// matches the log.
const UnknownErrorType = "Unknown"

// ErrorDiagnosis is the result of matching an error log against the
// known failure signatures. Produced per call, never persisted.
type ErrorDiagnosis struct {
	// ErrorType is the matched signature key, or UnknownErrorType.
	ErrorType string `json:"error_type"`

	// Analysis describes what caused the error.
	Analysis string `json:"error_analysis"`

	// Fix is the most likely remedy.
	Fix string `json:"likely_fix"`

	// CodeFix is an optional snippet implementing the fix.
	CodeFix string `json:"code_fix,omitempty"`

	// PreventionTips lists ways to avoid the error in future.
	PreventionTips []string `json:"prevention_tips"`
}
