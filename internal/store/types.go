// Package store provides SQLite database access for scanready's validation
// history.
package store

import "time"

// Snapshot represents one recorded validation invocation.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Command string    `json:"command"`
	Version string    `json:"version"`
}

// ValidationRun captures the headline numbers of one project validation
// within a snapshot.
type ValidationRun struct {
	ID                 int64  `json:"id"`
	SnapshotID         int64  `json:"snapshot_id"`
	Project            string `json:"project"`
	ScanQuality        string `json:"scan_quality"`
	CompletenessScore  int    `json:"completeness_score"`
	ConfigExists       bool   `json:"config_exists"`
	LanguageCount      int    `json:"language_count"`
	PropertyCount      int    `json:"property_count"`
	WarningCount       int    `json:"warning_count"`
	MissingCritical    int    `json:"missing_critical"`
	MissingRecommended int    `json:"missing_recommended"`
}

// RunDelta is the change in a project's headline numbers between two runs.
type RunDelta struct {
	Project           string `json:"project"`
	PreviousScore     int    `json:"previous_score"`
	CurrentScore      int    `json:"current_score"`
	ScoreDelta        int    `json:"score_delta"`
	PreviousQuality   string `json:"previous_quality"`
	CurrentQuality    string `json:"current_quality"`
}
