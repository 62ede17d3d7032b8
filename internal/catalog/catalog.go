package catalog

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// Catalog is the in-memory item template database together with the global
// stimulator buff table. It has no internal locking: a single override pass
// owns it exclusively, and readers only start once every pass is done.
type Catalog struct {
	templates map[domain.ItemID]*domain.Template
	buffs     map[string][]domain.Buff
}

// New creates an empty Catalog
func New() *Catalog {
	return &Catalog{
		templates: make(map[domain.ItemID]*domain.Template),
		buffs:     make(map[string][]domain.Buff),
	}
}

// Add registers a template. Templates without an id or with an id that is
// already present are rejected.
func (c *Catalog) Add(t *domain.Template) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgEmptyTemplateID)
	}
	if _, ok := c.templates[t.ID]; ok {
		return fmt.Errorf(ErrFmtDuplicateTemplate, domain.ErrInvalidCatalog, t.ID)
	}
	if t.Props == nil {
		t.Props = &domain.Properties{}
	}
	c.templates[t.ID] = t
	return nil
}

// Template returns the mutable template stored under id.
func (c *Catalog) Template(id domain.ItemID) (*domain.Template, bool) {
	t, ok := c.templates[id]
	return t, ok
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Templates returns every template ordered by id.
func (c *Catalog) Templates() []*domain.Template {
	out := make([]*domain.Template, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByParent returns the templates whose direct parent is parent, ordered by id.
func (c *Catalog) ByParent(parent domain.ItemID) []*domain.Template {
	var out []*domain.Template
	for _, t := range c.Templates() {
		if t.Parent == parent {
			out = append(out, t)
		}
	}
	return out
}

// Buffs returns the buff list registered under name.
func (c *Catalog) Buffs(name string) ([]domain.Buff, bool) {
	b, ok := c.buffs[name]
	return b, ok
}

// BuffNames returns the names of all buff lists, sorted.
func (c *Catalog) BuffNames() []string {
	names := make([]string, 0, len(c.buffs))
	for name := range c.buffs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReplaceBuffs installs buffs under name, discarding any previous list.
func (c *Catalog) ReplaceBuffs(name string, buffs []domain.Buff) {
	c.buffs[name] = buffs
}

// Suggest returns the known id closest to id by edit distance, if one is
// within suggestMaxDistance edits.
func (c *Catalog) Suggest(id domain.ItemID) (domain.ItemID, bool) {
	best := domain.ItemID("")
	bestDist := suggestMaxDistance + 1
	for known := range c.templates {
		dist := levenshtein.ComputeDistance(string(id), string(known))
		if dist < bestDist || (dist == bestDist && known < best) {
			best, bestDist = known, dist
		}
	}
	if best == "" || bestDist > suggestMaxDistance {
		return "", false
	}
	return best, true
}
