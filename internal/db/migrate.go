package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Each statement must be safe to
// repeat.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sections (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT 'active' CHECK(state IN ('active','inactive'))
	)`,
	`CREATE TABLE IF NOT EXISTS boundary_points (
		section_id INTEGER NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		latitude   REAL NOT NULL,
		longitude  REAL NOT NULL,
		PRIMARY KEY (section_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS elections (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS parties (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		name   TEXT NOT NULL,
		color  TEXT NOT NULL DEFAULT '',
		symbol TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS positions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT 'active' CHECK(state IN ('active','inactive')),
		section_id  INTEGER REFERENCES sections(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name  TEXT NOT NULL,
		last_names  TEXT NOT NULL DEFAULT '',
		photo_ref   TEXT NOT NULL DEFAULT '',
		party_id    INTEGER NOT NULL REFERENCES parties(id) ON DELETE CASCADE,
		position_id INTEGER NOT NULL REFERENCES positions(id) ON DELETE CASCADE,
		election_id INTEGER NOT NULL REFERENCES elections(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS ballots (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		section_id  INTEGER NOT NULL REFERENCES sections(id) ON DELETE CASCADE,
		election_id INTEGER NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
		state       TEXT NOT NULL DEFAULT 'active' CHECK(state IN ('active','inactive')),
		structure   TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		UNIQUE (section_id, election_id)
	)`,
	`ALTER TABLE ballots ADD COLUMN updated_at TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_positions_section ON positions(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_position_election ON candidates(position_id, election_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ballots_election ON ballots(election_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
