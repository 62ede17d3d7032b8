package override

import "github.com/osse101/TemplateOverrides_Go/internal/domain"

// Category is the table that drives one override pass: where the entries
// live, which scalars and effects an entry may override, and whether items
// are classified into bundles or buff lists are installed.
type Category struct {
	Name string

	// EntriesKey names the root key holding the entries. Empty means the
	// root itself is the entry mapping.
	EntriesKey string

	Scalars       []ScalarOverride
	DamageEffects []domain.DamageEffectType
	HealthFactors []domain.HealthFactor
	Curve         CurveFields

	// Classifier, when set, replaces Scalars with the fields of the
	// matching bundles. Toggles are read from the document root.
	Classifier *Classifier
	Toggles    []Toggle

	// Buffs installs effects_buffs under the entry's buffName.
	Buffs bool
}

var medScalars = []ScalarOverride{
	{Key: KeyMedUseTime, Field: domain.FieldMedUseTime},
	{Key: KeyMaxHpResource, Field: domain.FieldMaxHpResource},
	{Key: KeyHpResourceRate, Field: domain.FieldHpResourceRate},
}

const medCurve = CurveDelay | CurveDuration | CurveFadeOut

// Drugs overrides painkillers and other drug consumables.
func Drugs() Category {
	return Category{
		Name:    CategoryDrugs,
		Scalars: medScalars,
		DamageEffects: []domain.DamageEffectType{
			domain.DamagePain,
			domain.DamageIntoxication,
			domain.DamageContusion,
			domain.DamageRadExposure,
		},
		HealthFactors: []domain.HealthFactor{domain.HealthEnergy, domain.HealthHydration},
		Curve:         medCurve,
	}
}

// Medicals overrides bandages, splints and surgical kits.
func Medicals() Category {
	return Category{
		Name:    CategoryMedicals,
		Scalars: medScalars,
		DamageEffects: []domain.DamageEffectType{
			domain.DamageLightBleeding,
			domain.DamageDestroyedPart,
			domain.DamageFracture,
			domain.DamageHeavyBleeding,
		},
		Curve: medCurve,
	}
}

// Medkits overrides first aid kits.
func Medkits() Category {
	return Category{
		Name:    CategoryMedkits,
		Scalars: medScalars,
		DamageEffects: []domain.DamageEffectType{
			domain.DamageLightBleeding,
			domain.DamageContusion,
			domain.DamageRadExposure,
			domain.DamageFracture,
			domain.DamageHeavyBleeding,
		},
		Curve: medCurve,
	}
}

// Stimulators overrides injectors and their global buff lists.
func Stimulators() Category {
	return Category{
		Name:    CategoryStimulators,
		Scalars: medScalars,
		Buffs:   true,
	}
}

// Foods overrides food and drink items. Food curves carry no fade-out.
func Foods() Category {
	return Category{
		Name:          CategoryFoods,
		Scalars:       []ScalarOverride{{Key: KeyMaxResource, Field: domain.FieldMaxResource}},
		DamageEffects: []domain.DamageEffectType{domain.DamagePain},
		HealthFactors: []domain.HealthFactor{domain.HealthEnergy, domain.HealthHydration},
		Curve:         CurveDelay | CurveDuration,
	}
}

// Attachments overrides weapon attachments through the attachment bundles.
func Attachments() Category {
	return Category{
		Name:       CategoryAttachments,
		EntriesKey: KeyAttachments,
		Classifier: NewClassifier(AttachmentBundles()...),
		Toggles:    AttachmentToggles,
	}
}

var (
	ergonomics = []ScalarOverride{{Key: KeyErgonomicsUpdated, Field: domain.FieldErgonomics}}
	recoil     = []ScalarOverride{{Key: KeyRecoilUpdated, Field: domain.FieldRecoil}}
	heating    = []ScalarOverride{
		{Key: KeyHeatFactorUpdated, Field: domain.FieldHeatFactor},
		{Key: KeyCoolFactorUpdated, Field: domain.FieldCoolFactor},
		{Key: KeyDurabilityBurnUpdated, Field: domain.FieldDurabilityBurn},
	}
)

// AttachmentBundles returns the attachment bundles in evaluation order.
// Stocks, handguards and pistol grips share the muzzle recoil toggle.
// Flash hiders are listed on their own as well as under muzzles.
func AttachmentBundles() []Bundle {
	muzzleGrants := []Grant{
		{Requires: []Toggle{ToggleMuzzles}, Fields: ergonomics},
		{Requires: []Toggle{ToggleMuzzles, ToggleMuzzleRecoil}, Fields: recoil},
	}
	furniture := func(name string, parent domain.ItemID, toggle Toggle) Bundle {
		return NewBundle(name, []domain.ItemID{parent},
			Grant{Requires: []Toggle{toggle}, Fields: ergonomics},
			Grant{Requires: []Toggle{toggle, ToggleMuzzleRecoil}, Fields: recoil},
		)
	}

	return []Bundle{
		NewBundle(BundleForegrips, []domain.ItemID{domain.BaseForegrip},
			Grant{Requires: []Toggle{ToggleForegrips}, Fields: ergonomics}),
		NewBundle(BundleSights, []domain.ItemID{
			domain.BaseIronSight,
			domain.BaseCompactCollimator,
			domain.BaseCollimator,
			domain.BaseOpticScope,
			domain.BaseSpecialScope,
			domain.BaseAssaultScope,
		}, Grant{Requires: []Toggle{ToggleSights}, Fields: ergonomics}),
		NewBundle(BundleMuzzles, []domain.ItemID{
			domain.BaseCompensator,
			domain.BaseFlashHider,
			domain.BaseMuzzleCombo,
		}, muzzleGrants...),
		NewBundle(BundleFlashHiders, []domain.ItemID{domain.BaseFlashHider}, muzzleGrants...),
		NewBundle(BundleSuppressors, []domain.ItemID{domain.BaseSilencer},
			Grant{Requires: []Toggle{ToggleSuppressors}, Fields: ergonomics},
			Grant{Requires: []Toggle{ToggleSuppressorRecoil}, Fields: recoil},
			Grant{Requires: []Toggle{ToggleSuppressorHeating}, Fields: heating},
		),
		NewBundle(BundleTacticals, []domain.ItemID{
			domain.BaseFlashlight,
			domain.BaseLightLaser,
			domain.BaseTacticalCombo,
		}, Grant{Requires: []Toggle{ToggleTacticals}, Fields: ergonomics}),
		furniture(BundleStocks, domain.BaseStock, ToggleStocks),
		furniture(BundleHandguards, domain.BaseHandguard, ToggleHandGuards),
		furniture(BundlePistolGrips, domain.BasePistolGrip, TogglePistolGrips),
	}
}
