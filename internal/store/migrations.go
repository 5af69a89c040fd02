package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at TEXT NOT NULL,
			command  TEXT NOT NULL,
			version  TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS validation_runs (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id         INTEGER NOT NULL REFERENCES snapshots(id),
			project             TEXT NOT NULL,
			scan_quality        TEXT NOT NULL,
			completeness_score  INTEGER NOT NULL,
			config_exists       BOOLEAN NOT NULL,
			language_count      INTEGER NOT NULL,
			property_count      INTEGER NOT NULL,
			warning_count       INTEGER NOT NULL,
			missing_critical    INTEGER NOT NULL,
			missing_recommended INTEGER NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_validation_runs_snapshot
			ON validation_runs(snapshot_id)`,

		`CREATE INDEX IF NOT EXISTS idx_validation_runs_project
			ON validation_runs(project)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}
	return nil
}
