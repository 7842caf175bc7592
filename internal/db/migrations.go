package db

import "fmt"

// SchemaVersion is stored in PRAGMA user_version. It only ever goes up.
const SchemaVersion = 2

// migrate creates the tables and records the schema version
func (db *DB) migrate() error {
	version, err := db.Version()
	if err != nil {
		return err
	}
	if version > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, SchemaVersion)
	}

	migrations := []string{
		migrationCreateColors,
		migrationCreateNotes,
		migrationCreateContacts,
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	if version < SchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	return nil
}

// Version returns the schema version recorded in the database file
func (db *DB) Version() (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

const migrationCreateColors = `
CREATE TABLE IF NOT EXISTS colors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    hex TEXT NOT NULL,
    name TEXT NOT NULL
);
`

const migrationCreateNotes = `
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    can_be_checked_off INTEGER NOT NULL DEFAULT 0,
    is_checked_off INTEGER NOT NULL DEFAULT 0,
    color_id INTEGER NOT NULL DEFAULT 1,
    in_trash INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_notes_in_trash ON notes(in_trash);
`

const migrationCreateContacts = `
CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    number TEXT NOT NULL DEFAULT '',
    can_be_checked_off INTEGER NOT NULL DEFAULT 0,
    is_checked_off INTEGER NOT NULL DEFAULT 0,
    color_id INTEGER NOT NULL DEFAULT 1,
    in_trash INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_contacts_in_trash ON contacts(in_trash);
`
