package override

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/metrics"
)

// Catalog is the part of the template catalog a pass mutates.
type Catalog interface {
	Template(id domain.ItemID) (*domain.Template, bool)
	ReplaceBuffs(name string, buffs []domain.Buff)
}

// Suggester is implemented by catalogs that can name the closest known id
// for an unknown one.
type Suggester interface {
	Suggest(id domain.ItemID) (domain.ItemID, bool)
}

// Result summarizes one pass. Applied counts entries whose item was found,
// whether or not any field changed.
type Result struct {
	Category      string          `json:"category"`
	Entries       int             `json:"entries"`
	Applied       int             `json:"applied"`
	Missed        int             `json:"missed"`
	Unmatched     int             `json:"unmatched"`
	BuffsReplaced int             `json:"buffs_replaced"`
	MissedIDs     []domain.ItemID `json:"missed_ids,omitempty"`
}

// ApplyCategory applies every entry of doc to cat in document order.
// Entries for unknown ids are skipped and reported. An error aborts the
// pass; entries applied before it stay applied.
func ApplyCategory(ctx context.Context, cat Catalog, doc document.Node, category Category) (res Result, err error) {
	log := logger.FromContext(ctx).With("category", category.Name)
	start := time.Now()
	res.Category = category.Name

	defer func() {
		metrics.ObservePass(category.Name, metrics.PassCounts{
			Applied:       res.Applied,
			Missed:        res.Missed,
			Unmatched:     res.Unmatched,
			BuffsReplaced: res.BuffsReplaced,
		}, time.Since(start), err)
		if err != nil {
			log.Error(LogMsgPassFailed, "error", err, "applied", res.Applied)
		}
	}()

	if !doc.IsObject() {
		return res, fmt.Errorf(ErrMsgRootNotObject, domain.ErrMalformedDocument)
	}

	var toggles Toggles
	if category.Classifier != nil {
		toggles, err = ReadToggles(doc, category.Toggles)
		if err != nil {
			return res, err
		}
		log.Debug(LogMsgTogglesRead, "toggles", toggles)
	}

	entries := doc
	if category.EntriesKey != "" {
		var ok bool
		entries, ok = doc.Get(category.EntriesKey)
		if !ok || !entries.IsObject() {
			return res, fmt.Errorf(ErrFmtEntriesNotObj, domain.ErrMalformedDocument, category.EntriesKey)
		}
	}

	log.Debug(LogMsgPassStarted)
	for _, e := range entries.Entries() {
		res.Entries++
		id := domain.ItemID(e.Key)
		if err = applyEntry(log, cat, id, e.Value, category, toggles, &res); err != nil {
			return res, fmt.Errorf(ErrFmtEntry, id, err)
		}
	}

	log.Info(LogMsgPassCompleted,
		"entries", res.Entries,
		"applied", res.Applied,
		"missed", res.Missed,
		"unmatched", res.Unmatched,
		"buffs_replaced", res.BuffsReplaced,
		"duration", time.Since(start))
	return res, nil
}

func applyEntry(log *slog.Logger, cat Catalog, id domain.ItemID, entry document.Node, category Category, toggles Toggles, res *Result) error {
	if !entry.IsObject() {
		return fmt.Errorf(ErrFmtEntryNotObject, domain.ErrMalformedEntry)
	}

	tpl, ok := cat.Template(id)
	if !ok {
		res.Missed++
		res.MissedIDs = append(res.MissedIDs, id)
		warnMiss(log, cat, id, entry)
		return nil
	}
	res.Applied++

	if tpl.Props == nil {
		tpl.Props = &domain.Properties{}
	}
	props := tpl.Props

	if category.Classifier != nil {
		matches := category.Classifier.Classify(tpl.Parent, toggles)
		if len(matches) == 0 {
			res.Unmatched++
			log.Debug(LogMsgNoBundleMatched, "id", id, "parent", tpl.Parent)
		}
		for _, m := range matches {
			if _, err := MergeScalars(props, entry, m.Fields); err != nil {
				return err
			}
		}
	} else {
		if _, err := MergeScalars(props, entry, category.Scalars); err != nil {
			return err
		}
		if missing := MissingScalars(entry, category.Scalars); len(missing) > 0 {
			log.Debug(LogMsgScalarsSkipped, "id", id, "keys", missing)
		}
	}

	if len(category.DamageEffects) > 0 {
		section := effectSection(log, id, entry, KeyEffectsDamage)
		for _, kind := range category.DamageEffects {
			if _, err := MergeDamageEffect(props.EffectsDamage, section, kind, category.Curve); err != nil {
				return err
			}
		}
	}
	if len(category.HealthFactors) > 0 {
		section := effectSection(log, id, entry, KeyEffectsHealth)
		for _, factor := range category.HealthFactors {
			if _, err := MergeHealthEffect(props.EffectsHealth, section, factor); err != nil {
				return err
			}
		}
	}

	if category.Buffs {
		replaced, err := installBuffs(log, cat, id, props, entry)
		if err != nil {
			return err
		}
		if replaced {
			res.BuffsReplaced++
		}
	}
	return nil
}

// effectSection returns the entry's effects section. A section that is not
// an object is logged and skipped; the rest of the entry still applies.
func effectSection(log *slog.Logger, id domain.ItemID, entry document.Node, key string) document.Node {
	section, ok := entry.Get(key)
	if !ok || section.IsObject() {
		return section
	}
	log.Warn(LogMsgSectionSkipped, "id", id, "section", key)
	return document.Node{}
}

// installBuffs replaces the global list named by the entry's buffName. It
// only runs for items that reference a stimulator buff.
func installBuffs(log *slog.Logger, cat Catalog, id domain.ItemID, props *domain.Properties, entry document.Node) (bool, error) {
	raw, ok := entry.Get(KeyEffectsBuffs)
	if !ok {
		return false, nil
	}
	nameNode, ok := entry.Get(KeyBuffName)
	if !ok {
		return false, fmt.Errorf(ErrFmtBuffNameMissing, domain.ErrMalformedEntry, KeyEffectsBuffs, KeyBuffName)
	}
	name, err := nameNode.Text()
	if err != nil {
		return false, fmt.Errorf(ErrFmtBuffName, domain.ErrMalformedEntry, KeyBuffName, err)
	}
	if props.StimulatorBuffs == "" {
		log.Debug(LogMsgBuffsSkipped, "id", id, "buff_name", name)
		return false, nil
	}

	buffs, err := BuildBuffs(raw)
	if err != nil {
		return false, err
	}
	cat.ReplaceBuffs(name, buffs)
	log.Debug(LogMsgBuffsReplaced, "id", id, "buff_name", name, "count", len(buffs))
	return true, nil
}

func warnMiss(log *slog.Logger, cat Catalog, id domain.ItemID, entry document.Node) {
	args := []any{"id", id}
	if nameNode, ok := entry.Get(KeyName); ok {
		if name, err := nameNode.Text(); err == nil {
			args = append(args, "name", name)
		}
	}
	if s, ok := cat.(Suggester); ok {
		if near, ok := s.Suggest(id); ok {
			args = append(args, "did_you_mean", near)
		}
	}
	log.Warn(LogMsgItemNotFound, args...)
}
