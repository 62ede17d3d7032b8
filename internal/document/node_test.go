package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) Node {
	t.Helper()
	root, err := Parse([]byte(content), FormatJSON)
	require.NoError(t, err)
	return root
}

func TestNode_Get(t *testing.T) {
	root := mustParse(t, `{"a": 1, "b": null, "c": {"d": "x"}, "a": 2}`)

	t.Run("last duplicate wins", func(t *testing.T) {
		a, ok := root.Get("a")
		require.True(t, ok)
		v, err := a.Float()
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("null is absent", func(t *testing.T) {
		assert.False(t, root.Has("b"))
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := root.Get("zzz")
		assert.False(t, ok)
	})

	t.Run("nested object", func(t *testing.T) {
		c, ok := root.Get("c")
		require.True(t, ok)
		assert.True(t, c.IsObject())
		d, ok := c.Get("d")
		require.True(t, ok)
		text, err := d.Text()
		require.NoError(t, err)
		assert.Equal(t, "x", text)
	})

	t.Run("get on non-object", func(t *testing.T) {
		a, _ := root.Get("a")
		_, ok := a.Get("anything")
		assert.False(t, ok)
	})
}

func TestNode_Scalars(t *testing.T) {
	root := mustParse(t, `{"int": 3, "float": 0.25, "neg": -1.5e2, "quoted": "15", "flag": true, "list": [1]}`)

	get := func(key string) Node {
		n, ok := root.Get(key)
		require.True(t, ok, key)
		return n
	}

	v, err := get("int").Float()
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = get("float").Float()
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = get("neg").Float()
	require.NoError(t, err)
	assert.Equal(t, -150.0, v)

	_, err = get("quoted").Float()
	assert.True(t, errors.Is(err, ErrUnexpectedKind))

	_, err = get("list").Float()
	assert.True(t, errors.Is(err, ErrUnexpectedKind))

	i, err := get("int").Int()
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = get("float").Int()
	assert.True(t, errors.Is(err, ErrUnexpectedKind))

	b, err := get("flag").Bool()
	require.NoError(t, err)
	assert.True(t, b)

	_, err = get("int").Bool()
	assert.True(t, errors.Is(err, ErrUnexpectedKind))

	_, err = get("list").Text()
	assert.True(t, errors.Is(err, ErrUnexpectedKind))
}

func TestNode_Items(t *testing.T) {
	root := mustParse(t, `{"buffs": [{"BuffType": "A"}, {"BuffType": "B"}, {"BuffType": "C"}]}`)

	buffs, ok := root.Get("buffs")
	require.True(t, ok)
	require.True(t, buffs.IsArray())

	items := buffs.Items()
	require.Len(t, items, 3)
	for i, want := range []string{"A", "B", "C"} {
		n, ok := items[i].Get("BuffType")
		require.True(t, ok)
		got, err := n.Text()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Nil(t, root.Items())
	assert.Nil(t, buffs.Entries())
}

func TestNode_Zero(t *testing.T) {
	var n Node
	assert.False(t, n.Exists())
	assert.False(t, n.IsObject())
	assert.Equal(t, 0, n.Line())
	assert.Error(t, n.Decode(&struct{}{}))
}

func TestNode_FloatRejectsNonFinite(t *testing.T) {
	root, err := Parse([]byte("nan: .nan\ninf: .inf\nneginf: -.inf\nok: 1.5\n"), FormatYAML)
	require.NoError(t, err)

	for _, key := range []string{"nan", "inf", "neginf"} {
		t.Run(key, func(t *testing.T) {
			n, ok := root.Get(key)
			require.True(t, ok)
			_, err := n.Float()
			assert.True(t, errors.Is(err, ErrUnexpectedKind), "got %v", err)

			_, err = n.Int()
			assert.Error(t, err)
		})
	}

	n, ok := root.Get("ok")
	require.True(t, ok)
	v, err := n.Float()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}
