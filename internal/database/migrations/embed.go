// Package migrations holds the goose SQL migrations for the catalog tables.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
