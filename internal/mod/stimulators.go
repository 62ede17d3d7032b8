package mod

import (
	"context"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// StimulatorCatalog is the read side of the catalog the report needs.
type StimulatorCatalog interface {
	ByParent(parent domain.ItemID) []*domain.Template
	Buffs(name string) ([]domain.Buff, bool)
}

// StimulatorReport logs every stimulator with the buff list it references.
// Registered last, it shows the catalog as the other mods left it.
type StimulatorReport struct {
	catalog StimulatorCatalog
}

// NewStimulatorReport creates a StimulatorReport
func NewStimulatorReport(cat StimulatorCatalog) *StimulatorReport {
	return &StimulatorReport{catalog: cat}
}

// Name returns the mod name
func (r *StimulatorReport) Name() string {
	return NameStimulatorReport
}

// OnLoad writes one line per stimulator and a closing count.
func (r *StimulatorReport) OnLoad(ctx context.Context) error {
	log := logger.FromContext(ctx)

	stims := r.catalog.ByParent(domain.BaseStimulator)
	for _, t := range stims {
		buffName := ""
		if t.Props != nil {
			buffName = t.Props.StimulatorBuffs
		}
		buffs, _ := r.catalog.Buffs(buffName)
		log.Info(LogMsgStimulator,
			"id", t.ID,
			"name", t.Name,
			"buff_name", buffName,
			"buffs", len(buffs))
	}
	log.Info(LogMsgStimulatorCount, "stimulators", len(stims))
	return nil
}
