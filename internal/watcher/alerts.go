package watcher

import (
	"fmt"
	"time"

	"github.com/scanready/scanready/internal/validator"
)

// qualityRank orders scan quality levels for regression detection.
var qualityRank = map[validator.ScanQuality]int{
	validator.QualityDegraded: 0,
	validator.QualityPartial:  1,
	validator.QualityFull:     2,
}

// Compare detects notable changes between two watch states and returns alerts.
// It checks for critical, warning, and info-level changes.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical detects critical-level changes.
func compareCritical(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	// Scan quality regressed.
	if qualityRank[curr.ScanQuality] < qualityRank[prev.ScanQuality] {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   "Scan quality regressed",
			Message: fmt.Sprintf("Quality dropped from %s to %s", prev.ScanQuality, curr.ScanQuality),
			Time:    now,
		})
	}

	// All detectable languages disappeared.
	if prev.LanguageCount > 0 && curr.LanguageCount == 0 {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   "No languages detected",
			Message: fmt.Sprintf("Previously detected %d language(s), now none; a scan would be degraded", prev.LanguageCount),
			Time:    now,
		})
	}

	// Configuration file disappeared.
	if prev.ConfigExists && !curr.ConfigExists {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   "Configuration file removed",
			Message: "sonar-project.properties is no longer present",
			Time:    now,
		})
	}

	return alerts
}

// compareWarning detects warning-level changes.
func compareWarning(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	// Completeness score dropped.
	if curr.CompletenessScore < prev.CompletenessScore {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Completeness score dropped",
			Message: fmt.Sprintf("Score fell from %d to %d", prev.CompletenessScore, curr.CompletenessScore),
			Time:    now,
		})
	}

	// A critical property went missing that was detected before.
	for key := range curr.missingCritical {
		if !prev.missingCritical[key] {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   fmt.Sprintf("Critical property missing: %s", key),
				Message: "A previously detectable critical property can no longer be detected",
				Time:    now,
			})
		}
	}

	// A new warning code appeared.
	for code := range curr.warningCodes {
		if !prev.warningCodes[code] {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   fmt.Sprintf("New validation warning: %s", code),
				Message: "Validation produced a warning that was not present before",
				Time:    now,
			})
		}
	}

	return alerts
}

// compareInfo detects informational changes.
func compareInfo(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	// Scan quality improved.
	if qualityRank[curr.ScanQuality] > qualityRank[prev.ScanQuality] {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Scan quality improved",
			Message: fmt.Sprintf("Quality rose from %s to %s", prev.ScanQuality, curr.ScanQuality),
			Time:    now,
		})
	}

	// Completeness score improved.
	if curr.CompletenessScore > prev.CompletenessScore {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Completeness score improved",
			Message: fmt.Sprintf("Score rose from %d to %d", prev.CompletenessScore, curr.CompletenessScore),
			Time:    now,
		})
	}

	// A new language was detected.
	for lang := range curr.languages {
		if !prev.languages[lang] {
			alerts = append(alerts, Alert{
				Level:   "info",
				Title:   fmt.Sprintf("New language detected: %s", lang),
				Message: "The project now contains markers for an additional language",
				Time:    now,
			})
		}
	}

	// A previously missing critical property is now covered.
	for key := range prev.missingCritical {
		if !curr.missingCritical[key] {
			alerts = append(alerts, Alert{
				Level:   "info",
				Title:   fmt.Sprintf("Critical property resolved: %s", key),
				Message: "A previously missing critical property is now detected",
				Time:    now,
			})
		}
	}

	// Configuration file appeared.
	if !prev.ConfigExists && curr.ConfigExists {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Configuration file created",
			Message: "sonar-project.properties is now present",
			Time:    now,
		})
	}

	return alerts
}
