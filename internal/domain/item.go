package domain

// ItemID is the fixed-width identifier of an item template. It is used both
// as the catalog key and as the key of configuration entries. Comparison is
// exact; ids are never normalized.
type ItemID string

// Template is one item kind in the template catalog.
type Template struct {
	ID     ItemID      `json:"_id"`
	Name   string      `json:"_name"`
	Parent ItemID      `json:"_parent"`
	Type   string      `json:"_type,omitempty"`
	Props  *Properties `json:"_props,omitempty"`
}

// Properties is the patchable part of a template.
// A nil scalar means the slot does not apply to the item's class.
type Properties struct {
	MedUseTime                *float64 `json:"medUseTime,omitempty"`
	MaxHpResource             *float64 `json:"MaxHpResource,omitempty"`
	HpResourceRate            *float64 `json:"hpResourceRate,omitempty"`
	MaxResource               *float64 `json:"MaxResource,omitempty"`
	Ergonomics                *float64 `json:"Ergonomics,omitempty"`
	Recoil                    *float64 `json:"Recoil,omitempty"`
	HeatFactor                *float64 `json:"HeatFactor,omitempty"`
	CoolFactor                *float64 `json:"CoolFactor,omitempty"`
	DurabilityBurnModificator *float64 `json:"DurabilityBurnModificator,omitempty"`

	// StimulatorBuffs is the name of the global buff list the item applies.
	StimulatorBuffs string `json:"StimulatorBuffs,omitempty"`

	EffectsDamage map[DamageEffectType]*EffectCurve `json:"effects_damage,omitempty"`
	EffectsHealth map[HealthFactor]*HealthEffect    `json:"effects_health,omitempty"`
}

// ScalarField names one numeric slot of Properties.
type ScalarField string

const (
	FieldMedUseTime     ScalarField = "medUseTime"
	FieldMaxHpResource  ScalarField = "MaxHpResource"
	FieldHpResourceRate ScalarField = "hpResourceRate"
	FieldMaxResource    ScalarField = "MaxResource"
	FieldErgonomics     ScalarField = "Ergonomics"
	FieldRecoil         ScalarField = "Recoil"
	FieldHeatFactor     ScalarField = "HeatFactor"
	FieldCoolFactor     ScalarField = "CoolFactor"
	FieldDurabilityBurn ScalarField = "DurabilityBurnModificator"
)

func (p *Properties) slot(f ScalarField) **float64 {
	switch f {
	case FieldMedUseTime:
		return &p.MedUseTime
	case FieldMaxHpResource:
		return &p.MaxHpResource
	case FieldHpResourceRate:
		return &p.HpResourceRate
	case FieldMaxResource:
		return &p.MaxResource
	case FieldErgonomics:
		return &p.Ergonomics
	case FieldRecoil:
		return &p.Recoil
	case FieldHeatFactor:
		return &p.HeatFactor
	case FieldCoolFactor:
		return &p.CoolFactor
	case FieldDurabilityBurn:
		return &p.DurabilityBurnModificator
	}
	return nil
}

// Scalar returns the value of f and whether the slot is set.
func (p *Properties) Scalar(f ScalarField) (float64, bool) {
	s := p.slot(f)
	if s == nil || *s == nil {
		return 0, false
	}
	return **s, true
}

// SetScalar overwrites f with v. Unknown fields are ignored.
func (p *Properties) SetScalar(f ScalarField, v float64) {
	if s := p.slot(f); s != nil {
		*s = &v
	}
}

// Float returns a pointer to v, for building Properties literals.
func Float(v float64) *float64 {
	return &v
}
