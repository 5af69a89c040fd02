package store

import (
	"fmt"
	"time"
)

// CreateSnapshot records a new snapshot row and returns its ID.
func (db *DB) CreateSnapshot(command, version string) (int64, error) {
	res, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, command, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), command, version,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}
	return res.LastInsertId()
}

// RecordRun stores one project's validation numbers under a snapshot.
func (db *DB) RecordRun(snapshotID int64, run ValidationRun) error {
	_, err := db.conn.Exec(`
		INSERT INTO validation_runs (
			snapshot_id, project, scan_quality, completeness_score,
			config_exists, language_count, property_count, warning_count,
			missing_critical, missing_recommended
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshotID, run.Project, run.ScanQuality, run.CompletenessScore,
		run.ConfigExists, run.LanguageCount, run.PropertyCount, run.WarningCount,
		run.MissingCritical, run.MissingRecommended,
	)
	if err != nil {
		return fmt.Errorf("inserting validation run: %w", err)
	}
	return nil
}

// RecentRuns returns the most recent validation runs across all projects,
// newest first, limited to the given count.
func (db *DB) RecentRuns(limit int) ([]ValidationRun, []Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT r.id, r.snapshot_id, r.project, r.scan_quality, r.completeness_score,
		       r.config_exists, r.language_count, r.property_count, r.warning_count,
		       r.missing_critical, r.missing_recommended,
		       s.taken_at, s.command, s.version
		FROM validation_runs r
		JOIN snapshots s ON s.id = r.snapshot_id
		ORDER BY r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("querying recent runs: %w", err)
	}
	defer rows.Close()

	var runs []ValidationRun
	var snaps []Snapshot
	for rows.Next() {
		var run ValidationRun
		var snap Snapshot
		var takenAt string
		if err := rows.Scan(
			&run.ID, &run.SnapshotID, &run.Project, &run.ScanQuality, &run.CompletenessScore,
			&run.ConfigExists, &run.LanguageCount, &run.PropertyCount, &run.WarningCount,
			&run.MissingCritical, &run.MissingRecommended,
			&takenAt, &snap.Command, &snap.Version,
		); err != nil {
			return nil, nil, err
		}
		snap.ID = run.SnapshotID
		snap.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		runs = append(runs, run)
		snaps = append(snaps, snap)
	}
	return runs, snaps, rows.Err()
}

// RunsForProject returns the validation runs for one project, newest first.
func (db *DB) RunsForProject(project string, limit int) ([]ValidationRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, snapshot_id, project, scan_quality, completeness_score,
		       config_exists, language_count, property_count, warning_count,
		       missing_critical, missing_recommended
		FROM validation_runs
		WHERE project = ?
		ORDER BY id DESC
		LIMIT ?`, project, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs for %s: %w", project, err)
	}
	defer rows.Close()

	var runs []ValidationRun
	for rows.Next() {
		var run ValidationRun
		if err := rows.Scan(
			&run.ID, &run.SnapshotID, &run.Project, &run.ScanQuality, &run.CompletenessScore,
			&run.ConfigExists, &run.LanguageCount, &run.PropertyCount, &run.WarningCount,
			&run.MissingCritical, &run.MissingRecommended,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LatestDelta compares a project's two most recent runs. Returns nil when the
// project has fewer than two recorded runs.
func (db *DB) LatestDelta(project string) (*RunDelta, error) {
	runs, err := db.RunsForProject(project, 2)
	if err != nil {
		return nil, err
	}
	if len(runs) < 2 {
		return nil, nil
	}
	curr, prev := runs[0], runs[1]
	return &RunDelta{
		Project:         project,
		PreviousScore:   prev.CompletenessScore,
		CurrentScore:    curr.CompletenessScore,
		ScoreDelta:      curr.CompletenessScore - prev.CompletenessScore,
		PreviousQuality: prev.ScanQuality,
		CurrentQuality:  curr.ScanQuality,
	}, nil
}

// PruneSnapshots deletes snapshots older than the cutoff along with their
// validation runs. Returns the number of snapshots removed.
func (db *DB) PruneSnapshots(olderThan time.Time) (int64, error) {
	cutoff := olderThan.UTC().Format(time.RFC3339)

	if _, err := db.conn.Exec(`
		DELETE FROM validation_runs
		WHERE snapshot_id IN (SELECT id FROM snapshots WHERE taken_at < ?)`, cutoff); err != nil {
		return 0, fmt.Errorf("pruning validation runs: %w", err)
	}

	res, err := db.conn.Exec("DELETE FROM snapshots WHERE taken_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	return res.RowsAffected()
}

// ProjectNames returns the distinct project paths with recorded runs.
func (db *DB) ProjectNames() ([]string, error) {
	rows, err := db.conn.Query("SELECT DISTINCT project FROM validation_runs ORDER BY project")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
