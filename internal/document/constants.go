package document

// ==================== File Formats ====================

// Supported document extensions
const (
	ExtJSON  = ".json"
	ExtJSONC = ".jsonc"
	ExtYAML  = ".yaml"
	ExtYML   = ".yml"
)

// indentation used when re-flowing JSON before it is handed to the YAML parser
const jsonIndent = "  "

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadDocumentFailed  = "failed to read document %s: %w"
	ErrMsgParseDocumentFailed = "failed to parse document"
	ErrMsgInvalidJSON         = "invalid JSON"
	ErrMsgEmptyDocument       = "document is empty"
	ErrMsgRootNotMapping      = "document root must be an object"
)

// Node access error formats
const (
	ErrFmtExpectedNumber  = "%w: line %d: expected number, got %q"
	ErrFmtExpectedFinite  = "%w: line %d: expected finite number, got %q"
	ErrFmtExpectedInteger = "%w: line %d: expected integer, got %q"
	ErrFmtExpectedBool    = "%w: line %d: expected boolean, got %q"
	ErrFmtExpectedString  = "%w: line %d: expected string"
)
