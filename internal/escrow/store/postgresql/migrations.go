package postgresql

import "embed"

// Migrations holds the schema migrations in golang-migrate layout under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
