// Package migrations holds the schema migrations, one directory per SQL dialect.
package migrations

import "embed"

// FS contains the sqlite/ and postgres/ migration sources.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
