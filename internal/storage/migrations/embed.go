package migrations

import "embed"

// FS embeds the SQL migrations for the practice history database.
//
//go:embed *.sql
var FS embed.FS
