package validation

// goModFile marks the module root when resolving relative schema paths
const goModFile = "go.mod"

// ==================== Error Messages ====================

const (
	ErrMsgReadDataFailed      = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed    = "failed to load schema %s: %w"
	ErrMsgParseDataFailed     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFailed    = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed   = "failed to parse schema JSON: %w"
	ErrMsgAddResourceFailed   = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFailed = "failed to compile schema: %w"
	ErrMsgGetwdFailed         = "failed to get current directory: %w"
	ErrMsgSchemaNotFound      = "schema file not found: %s"
	ErrMsgSchemaNotFoundFrom  = "schema file not found: %s (searched from %s)"
	ErrMsgValidationFailed    = "schema validation failed:\n%s"
	ErrMsgValidationError     = "validation error: %w"
)

// Violation formats
const (
	violationFmt       = "  - at %s: %s validation failed"
	violationNoKeyword = "  - at %s: validation failed"
	rootLocation       = "(root)"
	locationSeparator  = "/"
	keywordSeparator   = "."
	violationSeparator = "\n"
)
