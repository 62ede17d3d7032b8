// Package mod runs the override mods against the template catalog. Each
// mod is loaded exactly once, in registration order, before the catalog is
// opened for reading.
package mod

import "context"

// Mod is a unit of catalog overrides.
type Mod interface {
	Name() string
	OnLoad(ctx context.Context) error
}
