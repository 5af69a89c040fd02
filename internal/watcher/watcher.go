// Package watcher provides background monitoring of a project's scan
// readiness, re-validating at an interval and emitting alerts when the
// configuration regresses or improves.
package watcher

import (
	"context"
	"time"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/validator"
)

// WatchState captures a point-in-time snapshot of a project's validation.
type WatchState struct {
	Timestamp         time.Time
	ScanQuality       validator.ScanQuality
	CompletenessScore int
	ConfigExists      bool
	LanguageCount     int
	PropertyCount     int

	// Internal: keep richer data for comparison.
	languages       map[string]bool
	missingCritical map[string]bool
	warningCodes    map[string]bool
	errorWarnings   []analyzer.ValidationWarning
}

// Alert represents a notable change detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Watcher re-validates a project at a regular interval and emits alerts
// when notable changes are detected.
type Watcher struct {
	projectPath   string
	validator     *validator.Validator
	interval      time.Duration
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
}

// New creates a Watcher that monitors the given project directory.
func New(projectPath string, v *validator.Validator, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		projectPath:   projectPath,
		validator:     v,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.previous = w.Snapshot()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alerts := w.Check()
			for _, a := range alerts {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check() []Alert {
	curr := w.Snapshot()

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot runs a validation pass and captures the headline numbers.
// Validation never fails, so a snapshot is always produced.
func (w *Watcher) Snapshot() *WatchState {
	result := w.validator.Validate(w.projectPath)

	state := &WatchState{
		Timestamp:         time.Now(),
		ScanQuality:       result.ScanQuality,
		CompletenessScore: result.ExistingConfig.CompletenessScore,
		ConfigExists:      result.ExistingConfig.Exists,
		LanguageCount:     len(result.Languages),
		PropertyCount:     len(result.DetectedProperties),
		languages:         make(map[string]bool, len(result.Languages)),
		missingCritical:   make(map[string]bool, len(result.MissingCritical)),
		warningCodes:      make(map[string]bool, len(result.Warnings)),
	}

	for _, lang := range result.Languages {
		state.languages[lang.Language] = true
	}
	for _, key := range result.MissingCritical {
		state.missingCritical[key] = true
	}
	for _, warn := range result.Warnings {
		state.warningCodes[warn.Code] = true
		if warn.Severity == analyzer.SeverityError {
			state.errorWarnings = append(state.errorWarnings, warn)
		}
	}

	return state
}
