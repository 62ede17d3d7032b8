package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

func TestCatalog_Add(t *testing.T) {
	t.Run("stores template and defaults props", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Add(&domain.Template{ID: "a", Parent: domain.BaseStock}))

		tpl, ok := c.Template("a")
		require.True(t, ok)
		assert.NotNil(t, tpl.Props)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("rejects empty id", func(t *testing.T) {
		err := New().Add(&domain.Template{})
		assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Add(&domain.Template{ID: "a"}))
		err := c.Add(&domain.Template{ID: "a"})
		assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
		assert.Contains(t, err.Error(), "'a'")
	})
}

func TestCatalog_Lookup(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(&domain.Template{ID: "c", Parent: domain.BaseStimulator}))
	require.NoError(t, c.Add(&domain.Template{ID: "a", Parent: domain.BaseStimulator}))
	require.NoError(t, c.Add(&domain.Template{ID: "b", Parent: domain.BaseMedkit}))

	_, ok := c.Template("zzz")
	assert.False(t, ok)

	ids := func(ts []*domain.Template) []domain.ItemID {
		var out []domain.ItemID
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}
	assert.Equal(t, []domain.ItemID{"a", "b", "c"}, ids(c.Templates()))
	assert.Equal(t, []domain.ItemID{"a", "c"}, ids(c.ByParent(domain.BaseStimulator)))
	assert.Empty(t, c.ByParent(domain.BaseFood))
}

func TestCatalog_ReplaceBuffs(t *testing.T) {
	c := New()
	c.ReplaceBuffs("BuffsPropital", []domain.Buff{{BuffType: "A"}, {BuffType: "B"}, {BuffType: "C"}})
	c.ReplaceBuffs("BuffsPropital", []domain.Buff{{BuffType: "D"}})
	c.ReplaceBuffs("BuffsSJ1TGLabs", nil)

	buffs, ok := c.Buffs("BuffsPropital")
	require.True(t, ok)
	assert.Equal(t, []domain.Buff{{BuffType: "D"}}, buffs)
	assert.Equal(t, []string{"BuffsPropital", "BuffsSJ1TGLabs"}, c.BuffNames())

	_, ok = c.Buffs("missing")
	assert.False(t, ok)
}

func TestCatalog_Suggest(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(&domain.Template{ID: "5c0e530286f7747fa1419862"}))
	require.NoError(t, c.Add(&domain.Template{ID: "5ed515c8d380ab312177c0fa"}))

	t.Run("one typo", func(t *testing.T) {
		id, ok := c.Suggest("5c0e530286f7747fa1419863")
		require.True(t, ok)
		assert.Equal(t, domain.ItemID("5c0e530286f7747fa1419862"), id)
	})

	t.Run("nothing close", func(t *testing.T) {
		_, ok := c.Suggest("ffffffffffffffffffffffff")
		assert.False(t, ok)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, ok := New().Suggest("a")
		assert.False(t, ok)
	})
}
