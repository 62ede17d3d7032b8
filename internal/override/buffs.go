package override

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// buffDescriptor is the document form of a buff. Nil fields take the
// defaults of domain.Buff.
type buffDescriptor struct {
	BuffType      *string  `key:"BuffType" validate:"required,min=1"`
	Chance        *float64 `key:"Chance"`
	Delay         *int     `key:"Delay"`
	Duration      *int     `key:"Duration"`
	Value         *float64 `key:"Value"`
	AbsoluteValue *bool    `key:"AbsoluteValue"`
	SkillName     *string  `key:"SkillName"`
}

func (d buffDescriptor) buff() domain.Buff {
	b := domain.Buff{
		BuffType: *d.BuffType,
		Chance:   domain.DefaultBuffChance,
	}
	if d.Chance != nil {
		b.Chance = *d.Chance
	}
	if d.Delay != nil {
		b.Delay = *d.Delay
	}
	if d.Duration != nil {
		b.Duration = *d.Duration
	}
	if d.Value != nil {
		b.Value = *d.Value
	}
	if d.AbsoluteValue != nil {
		b.AbsoluteValue = *d.AbsoluteValue
	}
	if d.SkillName != nil {
		b.SkillName = *d.SkillName
	}
	return b
}

// decodeDescriptor reads every known key of n with strict typing: numbers
// must be unquoted and Delay/Duration must be whole.
func decodeDescriptor(n document.Node) (buffDescriptor, error) {
	var d buffDescriptor
	var err error
	if d.BuffType, err = optional(n, "BuffType", document.Node.Text); err != nil {
		return d, err
	}
	if d.Chance, err = optional(n, "Chance", document.Node.Float); err != nil {
		return d, err
	}
	if d.Delay, err = optional(n, "Delay", document.Node.Int); err != nil {
		return d, err
	}
	if d.Duration, err = optional(n, "Duration", document.Node.Int); err != nil {
		return d, err
	}
	if d.Value, err = optional(n, "Value", document.Node.Float); err != nil {
		return d, err
	}
	if d.AbsoluteValue, err = optional(n, "AbsoluteValue", document.Node.Bool); err != nil {
		return d, err
	}
	if d.SkillName, err = optional(n, "SkillName", document.Node.Text); err != nil {
		return d, err
	}
	return d, nil
}

func optional[T any](n document.Node, key string, read func(document.Node) (T, error)) (*T, error) {
	v, ok := n.Get(key)
	if !ok {
		return nil, nil
	}
	out, err := read(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &out, nil
}

var (
	descriptorValidator     *validator.Validate
	descriptorValidatorOnce sync.Once
)

// getDescriptorValidator reports field names as they appear in documents.
func getDescriptorValidator() *validator.Validate {
	descriptorValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("key")
		})
		descriptorValidator = v
	})
	return descriptorValidator
}

// BuildBuffs converts a descriptor array into a buff list in document
// order. One malformed descriptor fails the whole list.
func BuildBuffs(raw document.Node) ([]domain.Buff, error) {
	if !raw.IsArray() {
		return nil, fmt.Errorf(ErrFmtBuffsNotArray, domain.ErrMalformedBuff, KeyEffectsBuffs)
	}

	items := raw.Items()
	buffs := make([]domain.Buff, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf(ErrFmtBuffNotObject, domain.ErrMalformedBuff, i)
		}
		d, err := decodeDescriptor(item)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuffDecode, domain.ErrMalformedBuff, i, err)
		}
		if err := getDescriptorValidator().Struct(d); err != nil {
			return nil, fmt.Errorf(ErrFmtBuffInvalid, domain.ErrMalformedBuff, i, err)
		}
		buffs = append(buffs, d.buff())
	}
	return buffs, nil
}
