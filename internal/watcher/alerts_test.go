package watcher

import (
	"testing"

	"github.com/scanready/scanready/internal/validator"
)

func state(quality validator.ScanQuality, score int) *WatchState {
	return &WatchState{
		ScanQuality:       quality,
		CompletenessScore: score,
		ConfigExists:      true,
		LanguageCount:     1,
		languages:         map[string]bool{"go": true},
		missingCritical:   map[string]bool{},
		warningCodes:      map[string]bool{},
	}
}

func alertsWithLevel(alerts []Alert, level string) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Level == level {
			out = append(out, a)
		}
	}
	return out
}

func TestCompare_NoChanges(t *testing.T) {
	prev := state(validator.QualityFull, 100)
	curr := state(validator.QualityFull, 100)

	if alerts := Compare(prev, curr); len(alerts) != 0 {
		t.Errorf("identical states should produce no alerts, got %v", alerts)
	}
}

func TestCompare_QualityRegressionIsCritical(t *testing.T) {
	prev := state(validator.QualityFull, 100)
	curr := state(validator.QualityPartial, 100)

	alerts := alertsWithLevel(Compare(prev, curr), "critical")
	if len(alerts) != 1 || alerts[0].Title != "Scan quality regressed" {
		t.Fatalf("expected one quality regression alert, got %v", alerts)
	}
}

func TestCompare_LanguagesDisappearedIsCritical(t *testing.T) {
	prev := state(validator.QualityFull, 100)
	curr := state(validator.QualityDegraded, 100)
	curr.LanguageCount = 0
	curr.languages = map[string]bool{}

	alerts := alertsWithLevel(Compare(prev, curr), "critical")

	found := false
	for _, a := range alerts {
		if a.Title == "No languages detected" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a no-languages alert, got %v", alerts)
	}
}

func TestCompare_ConfigRemovedIsCritical(t *testing.T) {
	prev := state(validator.QualityFull, 100)
	curr := state(validator.QualityFull, 100)
	curr.ConfigExists = false

	alerts := alertsWithLevel(Compare(prev, curr), "critical")
	if len(alerts) != 1 || alerts[0].Title != "Configuration file removed" {
		t.Fatalf("expected one config-removed alert, got %v", alerts)
	}
}

func TestCompare_ScoreDropIsWarning(t *testing.T) {
	prev := state(validator.QualityFull, 90)
	curr := state(validator.QualityFull, 70)

	alerts := alertsWithLevel(Compare(prev, curr), "warning")
	if len(alerts) != 1 || alerts[0].Title != "Completeness score dropped" {
		t.Fatalf("expected one score-drop alert, got %v", alerts)
	}
}

func TestCompare_NewMissingCriticalAndWarningCode(t *testing.T) {
	prev := state(validator.QualityFull, 100)
	curr := state(validator.QualityFull, 100)
	curr.missingCritical = map[string]bool{"sonar.java.binaries": true}
	curr.warningCodes = map[string]bool{"MISSING_BINARIES": true}

	alerts := alertsWithLevel(Compare(prev, curr), "warning")
	if len(alerts) != 2 {
		t.Fatalf("expected two warning alerts, got %v", alerts)
	}
}

func TestCompare_ImprovementsAreInfo(t *testing.T) {
	prev := state(validator.QualityPartial, 60)
	prev.ConfigExists = false
	prev.missingCritical = map[string]bool{"sonar.sources": true}
	curr := state(validator.QualityFull, 90)
	curr.languages = map[string]bool{"go": true, "python": true}

	alerts := Compare(prev, curr)
	if critical := alertsWithLevel(alerts, "critical"); len(critical) != 0 {
		t.Errorf("improvements must not raise critical alerts, got %v", critical)
	}

	info := alertsWithLevel(alerts, "info")
	titles := make(map[string]bool)
	for _, a := range info {
		titles[a.Title] = true
	}
	for _, want := range []string{
		"Scan quality improved",
		"Completeness score improved",
		"New language detected: python",
		"Critical property resolved: sonar.sources",
		"Configuration file created",
	} {
		if !titles[want] {
			t.Errorf("missing info alert %q, got %v", want, info)
		}
	}
}
