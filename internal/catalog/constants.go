package catalog

// suggestMaxDistance is the largest edit distance Suggest will accept
const suggestMaxDistance = 3

// Schema paths
const (
	SnapshotSchemaPath = "configs/schemas/catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadSnapshotFailed  = "failed to read catalog snapshot: %w"
	ErrMsgParseSnapshotFailed = "failed to parse catalog snapshot: %w"
	ErrMsgSchemaFailed        = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgEmptyTemplateID   = "template has empty id"
	ErrFmtDuplicateTemplate = "%w: duplicate template '%s'"
	ErrFmtTemplateIDKey     = "%w: template keyed '%s' declares id '%s'"
)

// ==================== Log Messages ====================

const (
	LogMsgSnapshotLoaded = "Loaded catalog snapshot"
)
