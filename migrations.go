// Package cardforge exposes assets embedded at the module root.
package cardforge

import "embed"

// Migrations holds the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
