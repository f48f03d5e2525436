// Package migrations embeds the SQL schema files applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// InitialSchemaUp is the file holding the initial schema.
const InitialSchemaUp = "001_initial_schema.up.sql"
