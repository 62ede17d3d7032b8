package domain

// DamageEffectType is a key of Properties.EffectsDamage.
type DamageEffectType string

const (
	DamagePain          DamageEffectType = "Pain"
	DamageIntoxication  DamageEffectType = "Intoxication"
	DamageContusion     DamageEffectType = "Contusion"
	DamageRadExposure   DamageEffectType = "RadExposure"
	DamageLightBleeding DamageEffectType = "LightBleeding"
	DamageHeavyBleeding DamageEffectType = "HeavyBleeding"
	DamageFracture      DamageEffectType = "Fracture"
	DamageDestroyedPart DamageEffectType = "DestroyedPart"
)

// DamageEffectTypes lists every damage effect kind.
var DamageEffectTypes = []DamageEffectType{
	DamagePain,
	DamageIntoxication,
	DamageContusion,
	DamageRadExposure,
	DamageLightBleeding,
	DamageHeavyBleeding,
	DamageFracture,
	DamageDestroyedPart,
}

// IsValid reports whether t belongs to the closed set of damage kinds.
func (t DamageEffectType) IsValid() bool {
	for _, k := range DamageEffectTypes {
		if k == t {
			return true
		}
	}
	return false
}

// HealthFactor is a key of Properties.EffectsHealth.
type HealthFactor string

const (
	HealthEnergy    HealthFactor = "Energy"
	HealthHydration HealthFactor = "Hydration"
)

// IsValid reports whether f is Energy or Hydration.
func (f HealthFactor) IsValid() bool {
	return f == HealthEnergy || f == HealthHydration
}

// EffectCurve is a timed damage effect. The health penalty range is only
// used by DestroyedPart.
type EffectCurve struct {
	Delay            float64  `json:"delay"`
	Duration         float64  `json:"duration"`
	FadeOut          float64  `json:"fadeOut"`
	HealthPenaltyMin *float64 `json:"healthPenaltyMin,omitempty"`
	HealthPenaltyMax *float64 `json:"healthPenaltyMax,omitempty"`
}

// HealthEffect is a magnitude applied to a health factor.
type HealthEffect struct {
	Value float64 `json:"value"`
}

// Buff is one entry of a stimulator buff list.
type Buff struct {
	BuffType      string  `json:"BuffType"`
	Chance        float64 `json:"Chance"`
	Delay         int     `json:"Delay"`
	Duration      int     `json:"Duration"`
	Value         float64 `json:"Value"`
	AbsoluteValue bool    `json:"AbsoluteValue"`
	SkillName     string  `json:"SkillName"`
}

// Buff defaults applied when a descriptor omits the field.
const (
	DefaultBuffChance = 1.0
)
