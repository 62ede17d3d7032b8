package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgTemplateNotFound = "template not found"
	ErrMsgInvalidCatalog   = "invalid catalog"

	// Document errors
	ErrMsgDocumentNotFound  = "configuration document not found"
	ErrMsgMalformedDocument = "malformed configuration document"

	// Entry errors
	ErrMsgMalformedEntry = "malformed configuration entry"
	ErrMsgMalformedBuff  = "malformed buff descriptor"

	// Mod host errors
	ErrMsgDuplicateMod   = "mod already registered"
	ErrMsgModsAlreadyRan = "mods already ran"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrInvalidCatalog   = errors.New(ErrMsgInvalidCatalog)

	// Document errors
	ErrDocumentNotFound  = errors.New(ErrMsgDocumentNotFound)
	ErrMalformedDocument = errors.New(ErrMsgMalformedDocument)

	// Entry errors
	ErrMalformedEntry = errors.New(ErrMsgMalformedEntry)
	ErrMalformedBuff  = errors.New(ErrMsgMalformedBuff)

	// Mod host errors
	ErrDuplicateMod   = errors.New(ErrMsgDuplicateMod)
	ErrModsAlreadyRan = errors.New(ErrMsgModsAlreadyRan)
)
