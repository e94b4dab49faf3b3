package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"sections", "boundary_points", "elections", "parties", "positions", "candidates", "ballots"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_positions_section", "idx_candidates_position_election", "idx_ballots_election"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_BallotPairIsUnique(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO sections (name) VALUES ('Centro')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO elections (name) VALUES ('Generales')`)
	require.NoError(t, err)

	insert := `INSERT INTO ballots (section_id, election_id, structure, created_at) VALUES (1, 1, '[]', '2026-01-01T00:00:00Z')`
	_, err = db.Exec(insert)
	require.NoError(t, err)
	_, err = db.Exec(insert)
	assert.Error(t, err)
}

func TestMigrate_RejectsUnknownState(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO positions (name, state) VALUES ('Alcalde', 'archived')`)
	assert.Error(t, err)
}
