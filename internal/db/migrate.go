package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tracked_records (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL
		            CHECK(kind IN ('risk_assessment','cpp','first_aid_kit')),
		name        TEXT NOT NULL,
		reference   TEXT NOT NULL DEFAULT '',
		target_date TEXT,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		serial_number   TEXT NOT NULL DEFAULT '',
		calibration_due TEXT,
		service_due     TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS checklists (
		id           TEXT PRIMARY KEY,
		equipment_id TEXT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		check_date   TEXT NOT NULL,
		frequency    TEXT NOT NULL
		             CHECK(frequency IN ('daily','weekly','monthly')),
		passed       INTEGER NOT NULL DEFAULT 1,
		inspector    TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,
	`ALTER TABLE equipment ADD COLUMN location TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_tracked_kind ON tracked_records(kind)`,
	`CREATE INDEX IF NOT EXISTS idx_tracked_target ON tracked_records(target_date)`,
	`CREATE INDEX IF NOT EXISTS idx_checklists_equipment ON checklists(equipment_id)`,
	`CREATE INDEX IF NOT EXISTS idx_checklists_date ON checklists(equipment_id, check_date)`,
}
