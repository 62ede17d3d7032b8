package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TemplateOverrides_Go/internal/catalog"
	"github.com/osse101/TemplateOverrides_Go/internal/config"
	"github.com/osse101/TemplateOverrides_Go/internal/mod"
)

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2020-01-01_00-00-%02d.log", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644))

	f, err := SetupLogger(&config.Config{LogDir: dir, LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2020-01-01_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))

	slog.Info("written")
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
}

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"items": {"5c10c8fd86f7743d7d706df3": {"_parent": "5448f3a64bdc2d60728b456a"}},
		"buffs": {}
	}`), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("file source", func(t *testing.T) {
		cfg := &config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: writeSnapshot(t)}

		c, pool, err := LoadCatalog(ctx, cfg, CatalogOptions{})
		require.NoError(t, err)
		assert.Nil(t, pool)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("missing snapshot", func(t *testing.T) {
		cfg := &config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: "/nonexistent.json"}

		_, _, err := LoadCatalog(ctx, cfg, CatalogOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})

	t.Run("seed requires postgres", func(t *testing.T) {
		cfg := &config.Config{CatalogSource: config.CatalogSourceFile, CatalogPath: writeSnapshot(t)}

		_, _, err := LoadCatalog(ctx, cfg, CatalogOptions{Seed: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSeedNeedsDatabase)
	})
}

func TestBuildMods(t *testing.T) {
	names := func(mods []mod.Mod) []string {
		var out []string
		for _, m := range mods {
			out = append(out, m.Name())
		}
		return out
	}

	t.Run("all mods in run order", func(t *testing.T) {
		mods := BuildMods(&config.Config{ModsDir: t.TempDir()}, catalog.New(), mod.NewReport())
		assert.Equal(t, []string{
			mod.NameBalancedMeds,
			mod.NameUsefulFoodsAndDrinks,
			mod.NameBetterAttachments,
			mod.NameStimulatorReport,
		}, names(mods))
	})

	t.Run("filtered by ENABLED_MODS", func(t *testing.T) {
		cfg := &config.Config{EnabledMods: []string{"betterattachments", "StimulatorReport"}}
		mods := BuildMods(cfg, catalog.New(), mod.NewReport())
		assert.Equal(t, []string{mod.NameBetterAttachments, mod.NameStimulatorReport}, names(mods))
	})

	t.Run("host rejects nothing from a fresh build", func(t *testing.T) {
		mods := BuildMods(&config.Config{}, catalog.New(), mod.NewReport())
		host, err := NewHost(context.Background(), mods)
		require.NoError(t, err)
		assert.Len(t, host.Mods(), 4)
	})
}

func TestRunSampleMods(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	cfg := &config.Config{
		CatalogSource: config.CatalogSourceFile,
		CatalogPath:   filepath.Join(root, config.ConfigPathCatalog),
		ModsDir:       filepath.Join(root, config.ConfigPathModsDir),
	}
	ctx := context.Background()

	c, _, err := LoadCatalog(ctx, cfg, CatalogOptions{})
	require.NoError(t, err)

	report := mod.NewReport()
	host, err := NewHost(ctx, BuildMods(cfg, c, report))
	require.NoError(t, err)
	require.NoError(t, host.Run(ctx))

	results := report.Results()
	require.Len(t, results, 6)
	for _, r := range results {
		assert.Greater(t, r.Applied, 0, r.Category)
	}
}
