// Package outreach holds assets shared by the binaries of the module.
package outreach

import "embed"

// Migrations contains the goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
