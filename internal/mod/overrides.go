package mod

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
	"github.com/osse101/TemplateOverrides_Go/internal/override"
	"github.com/osse101/TemplateOverrides_Go/internal/worker"
)

// Pass pairs a document path with the category it is applied as.
type Pass struct {
	Path     string
	Category override.Category
}

// OverrideMod applies one or more override documents to the catalog. All
// documents are loaded before the first is applied, so a missing or
// unparsable document leaves the catalog untouched.
type OverrideMod struct {
	name    string
	passes  []Pass
	loader  document.Loader
	catalog override.Catalog
	report  *Report
}

// NewOverrideMod creates an OverrideMod. report may be nil.
func NewOverrideMod(name string, loader document.Loader, cat override.Catalog, report *Report, passes ...Pass) *OverrideMod {
	return &OverrideMod{
		name:    name,
		passes:  passes,
		loader:  loader,
		catalog: cat,
		report:  report,
	}
}

// NewBalancedMeds overrides drugs, medicals, medkits and stimulators.
func NewBalancedMeds(loader document.Loader, cat override.Catalog, report *Report, drugs, medicals, medkits, stimulators string) *OverrideMod {
	return NewOverrideMod(NameBalancedMeds, loader, cat, report,
		Pass{Path: drugs, Category: override.Drugs()},
		Pass{Path: medicals, Category: override.Medicals()},
		Pass{Path: medkits, Category: override.Medkits()},
		Pass{Path: stimulators, Category: override.Stimulators()},
	)
}

// NewUsefulFoodsAndDrinks overrides food and drink effects.
func NewUsefulFoodsAndDrinks(loader document.Loader, cat override.Catalog, report *Report, path string) *OverrideMod {
	return NewOverrideMod(NameUsefulFoodsAndDrinks, loader, cat, report,
		Pass{Path: path, Category: override.Foods()})
}

// NewBetterAttachments overrides weapon attachments gated by the document's toggles.
func NewBetterAttachments(loader document.Loader, cat override.Catalog, report *Report, path string) *OverrideMod {
	return NewOverrideMod(NameBetterAttachments, loader, cat, report,
		Pass{Path: path, Category: override.Attachments()})
}

// Name returns the mod name
func (m *OverrideMod) Name() string {
	return m.name
}

// OnLoad loads every document, then applies them in order.
func (m *OverrideMod) OnLoad(ctx context.Context) error {
	log := logger.FromContext(ctx)

	docs, err := m.loadAll(ctx)
	if err != nil {
		return err
	}

	title := cases.Title(language.English)
	for i, p := range m.passes {
		res, err := override.ApplyCategory(ctx, m.catalog, docs[i], p.Category)
		if m.report != nil {
			m.report.Add(res)
		}
		if err != nil {
			return fmt.Errorf(ErrFmtApplyPass, p.Category.Name, err)
		}
		log.Info(fmt.Sprintf(LogFmtUpdated, res.Applied, title.String(p.Category.Name)),
			"category", p.Category.Name,
			"missed", res.Missed)
	}
	return nil
}

// loadAll reads the pass documents in parallel. The first failing pass in
// pass order is reported.
func (m *OverrideMod) loadAll(ctx context.Context) ([]document.Node, error) {
	docs := make([]document.Node, len(m.passes))
	errs := make([]error, len(m.passes))

	pool := worker.NewPool(len(m.passes), len(m.passes))
	pool.Start(ctx)
	for i, p := range m.passes {
		pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
			doc, err := m.loader.Load(p.Path)
			if err != nil {
				errs[i] = err
				return err
			}
			logger.FromContext(ctx).Debug(LogMsgDocumentLoaded, "category", p.Category.Name, "path", p.Path)
			docs[i] = doc
			return nil
		}))
	}
	if err := pool.Wait(); err != nil {
		for i, p := range m.passes {
			if errs[i] != nil {
				return nil, fmt.Errorf(ErrFmtLoadDocument, p.Category.Name, errs[i])
			}
		}
		return nil, err
	}
	return docs, nil
}
