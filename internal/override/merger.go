package override

import (
	"fmt"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// ScalarOverride maps an entry key to the scalar slot it overwrites.
type ScalarOverride struct {
	Key   string
	Field domain.ScalarField
}

// CurveFields selects which fields of an effect curve a category overrides.
type CurveFields uint8

const (
	CurveDelay CurveFields = 1 << iota
	CurveDuration
	CurveFadeOut
)

// Has reports whether f includes all of want.
func (f CurveFields) Has(want CurveFields) bool {
	return f&want == want
}

// MergeScalars overwrites every slot whose key is present in entry and
// returns how many were written. Absent keys leave their slot untouched.
func MergeScalars(props *domain.Properties, entry document.Node, overrides []ScalarOverride) (int, error) {
	type write struct {
		field domain.ScalarField
		value float64
	}
	writes := make([]write, 0, len(overrides))
	for _, o := range overrides {
		node, ok := entry.Get(o.Key)
		if !ok {
			continue
		}
		v, err := node.Float()
		if err != nil {
			return 0, fmt.Errorf(ErrFmtScalar, domain.ErrMalformedEntry, o.Key, err)
		}
		writes = append(writes, write{field: o.Field, value: v})
	}
	for _, w := range writes {
		props.SetScalar(w.field, w.value)
	}
	return len(writes), nil
}

// MissingScalars lists the override keys entry does not carry.
func MissingScalars(entry document.Node, overrides []ScalarOverride) []string {
	var missing []string
	for _, o := range overrides {
		if !entry.Has(o.Key) {
			missing = append(missing, o.Key)
		}
	}
	return missing
}

// MergeDamageEffect overwrites the curve for kind from section, the entry's
// effects_damage object. It is a no-op when section has no object for kind
// or the record has no curve for kind. Otherwise every field selected by
// fields must be present; DestroyedPart additionally requires both health
// penalties. The curve is only written once all fields have been read.
func MergeDamageEffect(effects map[domain.DamageEffectType]*domain.EffectCurve, section document.Node, kind domain.DamageEffectType, fields CurveFields) (bool, error) {
	sub, ok, err := effectObject(section, KeyEffectsDamage, string(kind))
	if err != nil || !ok {
		return false, err
	}
	curve, ok := effects[kind]
	if !ok || curve == nil {
		return false, nil
	}

	next := *curve
	read := func(key string, dst *float64) error {
		node, ok := sub.Get(key)
		if !ok {
			return fmt.Errorf(ErrFmtCurveField, domain.ErrMalformedEntry, KeyEffectsDamage, kind, key, "missing")
		}
		v, err := node.Float()
		if err != nil {
			return fmt.Errorf(ErrFmtCurveField, domain.ErrMalformedEntry, KeyEffectsDamage, kind, key, err)
		}
		*dst = v
		return nil
	}

	if fields.Has(CurveDelay) {
		if err := read(keyDelay, &next.Delay); err != nil {
			return false, err
		}
	}
	if fields.Has(CurveDuration) {
		if err := read(keyDuration, &next.Duration); err != nil {
			return false, err
		}
	}
	if fields.Has(CurveFadeOut) {
		if err := read(keyFadeOut, &next.FadeOut); err != nil {
			return false, err
		}
	}
	if kind == domain.DamageDestroyedPart {
		var lo, hi float64
		if err := read(keyHealthPenaltyMin, &lo); err != nil {
			return false, err
		}
		if err := read(keyHealthPenaltyMax, &hi); err != nil {
			return false, err
		}
		next.HealthPenaltyMin = domain.Float(lo)
		next.HealthPenaltyMax = domain.Float(hi)
	}

	*curve = next
	return true, nil
}

// MergeHealthEffect overwrites the value for factor from section, the
// entry's effects_health object, with the same no-op rules as
// MergeDamageEffect.
func MergeHealthEffect(effects map[domain.HealthFactor]*domain.HealthEffect, section document.Node, factor domain.HealthFactor) (bool, error) {
	sub, ok, err := effectObject(section, KeyEffectsHealth, string(factor))
	if err != nil || !ok {
		return false, err
	}
	effect, ok := effects[factor]
	if !ok || effect == nil {
		return false, nil
	}

	node, ok := sub.Get(keyHealthValue)
	if !ok {
		return false, fmt.Errorf(ErrFmtCurveField, domain.ErrMalformedEntry, KeyEffectsHealth, factor, keyHealthValue, "missing")
	}
	v, err := node.Float()
	if err != nil {
		return false, fmt.Errorf(ErrFmtCurveField, domain.ErrMalformedEntry, KeyEffectsHealth, factor, keyHealthValue, err)
	}
	effect.Value = v
	return true, nil
}

// effectObject returns section[key] when both are present objects.
func effectObject(section document.Node, sectionKey, key string) (document.Node, bool, error) {
	if !section.Exists() {
		return document.Node{}, false, nil
	}
	if !section.IsObject() {
		return document.Node{}, false, fmt.Errorf(ErrFmtSectionNotObj, domain.ErrMalformedEntry, sectionKey)
	}
	sub, ok := section.Get(key)
	if !ok {
		return document.Node{}, false, nil
	}
	if !sub.IsObject() {
		return document.Node{}, false, fmt.Errorf(ErrFmtEffectNotObj, domain.ErrMalformedEntry, sectionKey, key)
	}
	return sub, true, nil
}
