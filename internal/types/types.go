// Package types provides shared types used across the ccfscore codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// ValidationError represents a problem found in an assessment document.
type ValidationError struct {
	File     string
	Document int    // zero-based index of the document within the file
	Field    string // offending key, empty when the whole document is affected
	Message  string
	Severity string // error, warning
	Source   string // schema, decoder
}

// Issue source constants.
const (
	SourceSchema  = "schema"  // CUE assessment schema
	SourceDecoder = "decoder" // YAML/JSON decoding
)

// Severity level constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Output format constants.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
