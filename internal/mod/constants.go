package mod

// Mod names
const (
	NameBalancedMeds         = "BalancedMeds"
	NameUsefulFoodsAndDrinks = "UsefulFoodsAndDrinks"
	NameBetterAttachments    = "BetterAttachments"
	NameStimulatorReport     = "StimulatorReport"
)

// Error Messages
const (
	ErrFmtDuplicateMod = "%w: %s"
	ErrFmtModFailed    = "mod %s: %w"
	ErrFmtLoadDocument = "failed to load %s document: %w"
	ErrFmtApplyPass    = "failed to apply %s overrides: %w"
)

// Log Messages
const (
	LogMsgModRegistered   = "Mod registered"
	LogMsgModsStarting    = "Running mods"
	LogMsgModLoading      = "Loading mod"
	LogMsgModLoaded       = "Mod loaded"
	LogMsgModFailed       = "Mod failed"
	LogMsgModsFinished    = "All mods loaded"
	LogMsgDocumentLoaded  = "Loaded override document"
	LogFmtUpdated         = "Updated %d %s"
	LogMsgStimulator      = "Stimulator"
	LogMsgStimulatorCount = "Stimulator report"
)
