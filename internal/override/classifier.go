package override

import (
	"fmt"

	"github.com/osse101/TemplateOverrides_Go/internal/document"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
)

// Toggle is the document key of a boolean feature switch.
type Toggle string

// Attachment toggles
const (
	ToggleForegrips         Toggle = "betterForegrips"
	ToggleSights            Toggle = "betterSights"
	ToggleMuzzles           Toggle = "betterMuzzles"
	ToggleMuzzleRecoil      Toggle = "betterMuzzleRecoil"
	ToggleSuppressors       Toggle = "betterSuppressors"
	ToggleSuppressorRecoil  Toggle = "betterSuppressorRecoil"
	ToggleSuppressorHeating Toggle = "betterSuppressorHeating"
	ToggleTacticals         Toggle = "betterTacticals"
	ToggleStocks            Toggle = "betterStocks"
	TogglePistolGrips       Toggle = "betterPistolGrips"
	ToggleHandGuards        Toggle = "betterHandGuards"
)

// AttachmentToggles lists every toggle the attachment document may carry.
var AttachmentToggles = []Toggle{
	ToggleForegrips,
	ToggleSights,
	ToggleMuzzles,
	ToggleMuzzleRecoil,
	ToggleSuppressors,
	ToggleSuppressorRecoil,
	ToggleSuppressorHeating,
	ToggleTacticals,
	ToggleStocks,
	TogglePistolGrips,
	ToggleHandGuards,
}

// Toggles holds the switch values read from a document. A toggle missing
// from the map is enabled.
type Toggles map[Toggle]bool

// Enabled reports whether t is on.
func (ts Toggles) Enabled(t Toggle) bool {
	on, ok := ts[t]
	return !ok || on
}

// ReadToggles reads the known toggles from the document root.
func ReadToggles(root document.Node, known []Toggle) (Toggles, error) {
	ts := make(Toggles, len(known))
	for _, t := range known {
		node, ok := root.Get(string(t))
		if !ok {
			continue
		}
		on, err := node.Bool()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtToggle, domain.ErrMalformedDocument, t, err)
		}
		ts[t] = on
	}
	return ts, nil
}

// Grant authorizes a set of scalar overrides when all of its required
// toggles are enabled.
type Grant struct {
	Requires []Toggle
	Fields   []ScalarOverride
}

func (g Grant) enabled(ts Toggles) bool {
	for _, t := range g.Requires {
		if !ts.Enabled(t) {
			return false
		}
	}
	return true
}

// Bundle is a named set of direct parent ids with the grants that apply to
// items under them.
type Bundle struct {
	Name    string
	Parents map[domain.ItemID]struct{}
	Grants  []Grant
}

// NewBundle builds a bundle over the given parent ids.
func NewBundle(name string, parents []domain.ItemID, grants ...Grant) Bundle {
	set := make(map[domain.ItemID]struct{}, len(parents))
	for _, p := range parents {
		set[p] = struct{}{}
	}
	return Bundle{Name: name, Parents: set, Grants: grants}
}

// Contains reports whether parent is in the bundle's set.
func (b Bundle) Contains(parent domain.ItemID) bool {
	_, ok := b.Parents[parent]
	return ok
}

// Match is a bundle that applies to an item, with the fields of its enabled
// grants in grant order.
type Match struct {
	Bundle string
	Fields []ScalarOverride
}

// Classifier maps an item's direct parent to the bundles that apply to it.
type Classifier struct {
	bundles []Bundle
}

// NewClassifier creates a classifier. Bundles are evaluated in the order
// given.
func NewClassifier(bundles ...Bundle) *Classifier {
	return &Classifier{bundles: bundles}
}

// Bundles returns the classifier's bundles in evaluation order.
func (c *Classifier) Bundles() []Bundle {
	return c.bundles
}

// Classify returns every bundle whose parent set contains parent and which
// has at least one enabled grant. Only the parent itself is checked; the
// class hierarchy is not walked.
func (c *Classifier) Classify(parent domain.ItemID, ts Toggles) []Match {
	var matches []Match
	for _, b := range c.bundles {
		if !b.Contains(parent) {
			continue
		}
		var fields []ScalarOverride
		granted := false
		for _, g := range b.Grants {
			if g.enabled(ts) {
				granted = true
				fields = append(fields, g.Fields...)
			}
		}
		if granted {
			matches = append(matches, Match{Bundle: b.Name, Fields: fields})
		}
	}
	return matches
}
