package postgres

// Queries
const (
	queryLoadTemplates = `SELECT id, name, parent_id, type, props FROM item_templates ORDER BY id`
	queryLoadBuffs     = `SELECT name, buffs FROM stimulator_buffs ORDER BY name`

	queryUpsertTemplate = `
INSERT INTO item_templates (id, name, parent_id, type, props)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    parent_id = EXCLUDED.parent_id,
    type = EXCLUDED.type,
    props = EXCLUDED.props,
    updated_at = NOW()`

	queryUpsertBuffs = `
INSERT INTO stimulator_buffs (name, buffs)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE
SET buffs = EXCLUDED.buffs,
    updated_at = NOW()`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToQueryTemplates = "failed to query item templates"
	ErrMsgFailedToQueryBuffs     = "failed to query stimulator buffs"
	ErrFmtDecodeProps            = "failed to decode props of template '%s': %w"
	ErrFmtDecodeBuffs            = "failed to decode buff list '%s': %w"
	ErrFmtEncodeProps            = "failed to encode props of template '%s': %w"
	ErrFmtEncodeBuffs            = "failed to encode buff list '%s': %w"
	ErrMsgFailedToSaveSnapshot   = "failed to save catalog snapshot"
)

// Log Messages
const (
	LogMsgCatalogLoaded = "Loaded catalog from database"
	LogMsgCatalogSaved  = "Saved catalog snapshot to database"
)
