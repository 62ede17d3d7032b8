package domain

// Parent class identifiers of the template hierarchy. Only the classes the
// override bundles and reports refer to are listed.
const (
	// Sights
	BaseIronSight         ItemID = "55818ac54bdc2d5b648b456e"
	BaseCompactCollimator ItemID = "55818acf4bdc2dde698b456b"
	BaseCollimator        ItemID = "55818ad54bdc2ddc698b4569"
	BaseAssaultScope      ItemID = "55818add4bdc2d5b648b456f"
	BaseOpticScope        ItemID = "55818ae44bdc2dde698b456c"
	BaseSpecialScope      ItemID = "55818aeb4bdc2ddc698b456a"

	// Muzzle devices
	BaseCompensator ItemID = "550aa4af4bdc2dd4348b456e"
	BaseFlashHider  ItemID = "550aa4bf4bdc2dd6348b456b"
	BaseMuzzleCombo ItemID = "550aa4dd4bdc2dc9348b4569"
	BaseSilencer    ItemID = "550aa4cd4bdc2dd8348b456c"

	// Furniture
	BaseForegrip   ItemID = "55818af64bdc2d5b648b4570"
	BaseStock      ItemID = "55818a594bdc2db9688b456a"
	BaseHandguard  ItemID = "55818a104bdc2db9688b4569"
	BasePistolGrip ItemID = "55818a684bdc2ddd698b456d"

	// Tactical devices
	BaseFlashlight    ItemID = "55818b084bdc2d5b648b4571"
	BaseLightLaser    ItemID = "55818b0e4bdc2dde698b456e"
	BaseTacticalCombo ItemID = "55818b164bdc2ddc698b456c"

	// Consumables
	BaseStimulator ItemID = "5448f3a64bdc2d60728b456a"
	BaseMedkit     ItemID = "5448f39d4bdc2d0a728b4568"
	BaseMedical    ItemID = "5448f3ac4bdc2dce718b4569"
	BaseDrugs      ItemID = "5448f3a14bdc2d27728b4569"
	BaseFood       ItemID = "5448e8d04bdc2ddf718b4569"
	BaseDrink      ItemID = "5448e8d64bdc2dce718b4568"
)
