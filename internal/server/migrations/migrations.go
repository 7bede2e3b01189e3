// Package migrations embeds the goose SQL migrations for every supported
// dialect. Each dialect lives in its own directory of the embedded FS.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// Directories inside Migrations, per dialect.
const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
