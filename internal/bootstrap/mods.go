package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/TemplateOverrides_Go/internal/catalog"
	"github.com/osse101/TemplateOverrides_Go/internal/config"
	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/mod"
)

// BuildMods returns the enabled mods in their fixed run order. The
// stimulator report runs last so it sees every override.
func BuildMods(cfg *config.Config, cat *catalog.Catalog, report *mod.Report) []mod.Mod {
	loader := document.NewLoader()

	all := []mod.Mod{
		mod.NewBalancedMeds(loader, cat, report,
			cfg.ModPath(config.ModPathDrugs),
			cfg.ModPath(config.ModPathMedicals),
			cfg.ModPath(config.ModPathMedkits),
			cfg.ModPath(config.ModPathStimulators)),
		mod.NewUsefulFoodsAndDrinks(loader, cat, report, cfg.ModPath(config.ModPathFoods)),
		mod.NewBetterAttachments(loader, cat, report, cfg.ModPath(config.ModPathAttachments)),
		mod.NewStimulatorReport(cat),
	}

	var enabled []mod.Mod
	for _, m := range all {
		if !cfg.ModEnabled(m.Name()) {
			logger.Info(LogMsgModDisabled, "mod", m.Name())
			continue
		}
		enabled = append(enabled, m)
	}
	return enabled
}

// NewHost registers mods on a fresh host.
func NewHost(ctx context.Context, mods []mod.Mod) (*mod.Host, error) {
	host := mod.NewHost()
	for _, m := range mods {
		if err := host.Register(m); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegister, err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgModsRegistered, "mods", host.Mods())
	return host, nil
}
