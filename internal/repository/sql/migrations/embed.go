package migrations

import "embed"

// FS contains the embedded SQLite catalog migrations.
//
//go:embed *.sql
var FS embed.FS
