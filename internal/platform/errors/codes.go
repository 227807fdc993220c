// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Content errors
	CodeContentInvalidPayload    Code = "CONTENT_INVALID_PAYLOAD"
	CodeContentUnsupportedSystem Code = "CONTENT_UNSUPPORTED_SYSTEM"
	CodeContentLocaleMismatch    Code = "CONTENT_LOCALE_MISMATCH"
	CodeContentDuplicateEntry    Code = "CONTENT_DUPLICATE_ENTRY"
	CodeContentUnknownEffect     Code = "CONTENT_UNKNOWN_EFFECT"
	CodeContentInvalidEffect     Code = "CONTENT_INVALID_EFFECT"
	CodeContentInvalidFilter     Code = "CONTENT_INVALID_FILTER"

	// Character errors
	CodeCharacterDecode Code = "CHARACTER_DECODE"

	// Ruleset errors
	CodeRulesetInvalid Code = "RULESET_INVALID"
)

// ExitCode maps domain codes to process exit statuses for command entry points.
func (c Code) ExitCode() int {
	switch c {
	case CodeContentInvalidPayload,
		CodeContentUnsupportedSystem,
		CodeContentLocaleMismatch,
		CodeContentDuplicateEntry,
		CodeContentUnknownEffect,
		CodeContentInvalidEffect,
		CodeContentInvalidFilter,
		CodeCharacterDecode,
		CodeRulesetInvalid:
		return 2
	case CodeNotFound:
		return 3
	default:
		return 1
	}
}
