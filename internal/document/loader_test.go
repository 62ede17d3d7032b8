package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON keeps document order", func(t *testing.T) {
		path := writeDocument(t, "drugs.json", `{
			"5af0548586f7743a532b7e99": {"name": "Ibuprofen", "medUseTime": 3},
			"544fb37f4bdc2dee738b4567": {"name": "Analgin", "medUseTime": 2},
			"5755383e24597772cb798966": {"name": "Vaseline", "medUseTime": 4}
		}`)

		root, err := loader.Load(path)
		require.NoError(t, err)

		entries := root.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "5af0548586f7743a532b7e99", entries[0].Key)
		assert.Equal(t, "544fb37f4bdc2dee738b4567", entries[1].Key)
		assert.Equal(t, "5755383e24597772cb798966", entries[2].Key)

		useTime, ok := entries[2].Value.Get("medUseTime")
		require.True(t, ok)
		v, err := useTime.Float()
		require.NoError(t, err)
		assert.Equal(t, 4.0, v)
	})

	t.Run("comments and trailing commas", func(t *testing.T) {
		path := writeDocument(t, "config.jsonc", `{
			// toggles
			"betterSights": false, /* block */
			"value": {},
		}`)

		root, err := loader.Load(path)
		require.NoError(t, err)

		sights, ok := root.Get("betterSights")
		require.True(t, ok)
		b, err := sights.Bool()
		require.NoError(t, err)
		assert.False(t, b)
	})

	t.Run("YAML document", func(t *testing.T) {
		path := writeDocument(t, "foods.yaml", "item_b:\n  MaxResource: 2\nitem_a:\n  MaxResource: 1\n")

		root, err := loader.Load(path)
		require.NoError(t, err)

		entries := root.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "item_b", entries[0].Key)
		assert.Equal(t, "item_a", entries[1].Key)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDocumentNotFound))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeDocument(t, "broken.json", `{invalid json}`)

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMalformedDocument))
		assert.Contains(t, err.Error(), ErrMsgInvalidJSON)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeDocument(t, "empty.json", "  \n")

		_, err := loader.Load(path)
		assert.True(t, errors.Is(err, domain.ErrMalformedDocument))
	})

	t.Run("root must be an object", func(t *testing.T) {
		path := writeDocument(t, "list.json", `[1, 2, 3]`)

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMalformedDocument))
		assert.Contains(t, err.Error(), ErrMsgRootNotMapping)
	})
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("a/config.json"))
	assert.Equal(t, FormatJSON, FormatForPath("a/config.jsonc"))
	assert.Equal(t, FormatYAML, FormatForPath("a/config.YAML"))
	assert.Equal(t, FormatYAML, FormatForPath("a/config.yml"))
	assert.Equal(t, FormatJSON, FormatForPath("a/config"))
}
