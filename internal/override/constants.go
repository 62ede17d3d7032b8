package override

// Entry keys
const (
	KeyName          = "name"
	KeyEffectsDamage = "effects_damage"
	KeyEffectsHealth = "effects_health"
	KeyEffectsBuffs  = "effects_buffs"
	KeyBuffName      = "buffName"
	KeyAttachments   = "value"
)

// Effect curve keys
const (
	keyDelay            = "delay"
	keyDuration         = "duration"
	keyFadeOut          = "fadeOut"
	keyHealthPenaltyMin = "healthPenaltyMin"
	keyHealthPenaltyMax = "healthPenaltyMax"
	keyHealthValue      = "value"
)

// Scalar document keys
const (
	KeyMedUseTime            = "medUseTime"
	KeyMaxHpResource         = "MaxHpResource"
	KeyHpResourceRate        = "hpResourceRate"
	KeyMaxResource           = "MaxResource"
	KeyErgonomicsUpdated     = "ergonomics_updated"
	KeyRecoilUpdated         = "recoil_updated"
	KeyHeatFactorUpdated     = "heatFactor_updated"
	KeyCoolFactorUpdated     = "coolFactor_updated"
	KeyDurabilityBurnUpdated = "durabilityBurn_updated"
)

// Category names
const (
	CategoryDrugs       = "drugs"
	CategoryMedicals    = "medicals"
	CategoryMedkits     = "medkits"
	CategoryStimulators = "stimulators"
	CategoryFoods       = "foods"
	CategoryAttachments = "attachments"
)

// Bundle names
const (
	BundleForegrips   = "foregrips"
	BundleSights      = "sights"
	BundleMuzzles     = "muzzles"
	BundleFlashHiders = "flash_hiders"
	BundleSuppressors = "suppressors"
	BundleTacticals   = "tacticals"
	BundleStocks      = "stocks"
	BundleHandguards  = "handguards"
	BundlePistolGrips = "pistol_grips"
)

// ==================== Error Messages ====================

const (
	ErrFmtEntry           = "entry %s: %w"
	ErrFmtToggle          = "%w: toggle %s: %v"
	ErrFmtScalar          = "%w: %s: %v"
	ErrFmtSectionNotObj   = "%w: %s must be an object"
	ErrFmtEffectNotObj    = "%w: %s.%s must be an object"
	ErrFmtCurveField      = "%w: %s.%s.%s: %v"
	ErrFmtEntryNotObject  = "%w: entry must be an object"
	ErrFmtEntriesNotObj   = "%w: %s must be an object"
	ErrFmtBuffNameMissing = "%w: %s present without %s"
	ErrFmtBuffName        = "%w: %s: %v"
	ErrFmtBuffsNotArray   = "%w: %s must be an array"
	ErrFmtBuffNotObject   = "%w: descriptor %d must be an object"
	ErrFmtBuffDecode      = "%w: descriptor %d: %v"
	ErrFmtBuffInvalid     = "%w: descriptor %d: %v"
	ErrMsgRootNotObject   = "%w: document root must be an object"
)

// ==================== Log Messages ====================

const (
	LogMsgPassStarted     = "Override pass started"
	LogMsgPassCompleted   = "Override pass completed"
	LogMsgPassFailed      = "Override pass failed"
	LogMsgItemNotFound    = "Item not found in catalog, skipping"
	LogMsgScalarsSkipped  = "Scalar overrides absent, left untouched"
	LogMsgNoBundleMatched = "No enabled bundle matches item"
	LogMsgBuffsReplaced   = "Replaced stimulator buff list"
	LogMsgBuffsSkipped    = "Item references no stimulator buff, buffs skipped"
	LogMsgTogglesRead     = "Attachment toggles read"
	LogMsgSectionSkipped  = "Effects section is not an object, skipped"
)
