package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
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

	for _, table := range []string{"tracked_records", "equipment", "checklists"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_tracked_kind",
		"idx_tracked_target",
		"idx_checklists_equipment",
		"idx_checklists_date",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_AddsLocationColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO equipment (id, name, location, created_at, updated_at)
		VALUES ('e1', 'Drill', 'Store room', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var loc string
	require.NoError(t, db.QueryRow(`SELECT location FROM equipment WHERE id='e1'`).Scan(&loc))
	assert.Equal(t, "Store room", loc)
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_ChecklistCascadesWithEquipment(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO equipment (id, name, created_at, updated_at)
		VALUES ('e1', 'Hoist', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO checklists (id, equipment_id, check_date, frequency, created_at)
		VALUES ('c1', 'e1', '2024-06-01', 'weekly', '2024-06-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM equipment WHERE id='e1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM checklists`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_RejectsUnknownFrequency(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO equipment (id, name, created_at, updated_at)
		VALUES ('e1', 'Hoist', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO checklists (id, equipment_id, check_date, frequency, created_at)
		VALUES ('c1', 'e1', '2024-06-01', 'hourly', '2024-06-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/safeops.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_SetsBusyTimeout(t *testing.T) {
	db := openTestDB(t)

	var timeout int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}
