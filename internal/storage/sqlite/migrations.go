package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure the table exists.
//
// All application state lives in a single key-value table: each of the
// four collections (members, groups, sessions, settings) is one row whose
// value is the JSON encoding of the whole collection. Writes replace the
// row; there is no per-entity schema to migrate when a model grows.
const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
