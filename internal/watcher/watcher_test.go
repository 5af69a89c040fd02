package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scanready/scanready/internal/validator"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v := validator.New(validator.DefaultRegistry(), "sonar-project.properties")
	return New(dir, v, time.Minute, nil), dir
}

func TestSnapshot_CapturesHeadlineNumbers(t *testing.T) {
	w, _ := newTestWatcher(t)

	state := w.Snapshot()

	if state.LanguageCount != 1 || !state.languages["go"] {
		t.Errorf("expected one go language, got %+v", state)
	}
	if state.ConfigExists {
		t.Error("no properties file was written")
	}
	if state.Timestamp.IsZero() {
		t.Error("snapshot timestamp not set")
	}
}

func TestCheck_StableProjectProducesNoAlerts(t *testing.T) {
	w, _ := newTestWatcher(t)
	w.previous = w.Snapshot()

	if alerts := w.Check(); len(alerts) != 0 {
		t.Errorf("unchanged project should produce no alerts, got %v", alerts)
	}
}

func TestCheck_DetectsConfigCreation(t *testing.T) {
	w, dir := newTestWatcher(t)
	w.previous = w.Snapshot()

	err := os.WriteFile(filepath.Join(dir, "sonar-project.properties"),
		[]byte("sonar.projectKey=demo\nsonar.sources=.\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	alerts := w.Check()

	found := false
	for _, a := range alerts {
		if a.Title == "Configuration file created" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a config-created alert, got %v", alerts)
	}
}

func TestCheck_SuppressesRepeatedAlerts(t *testing.T) {
	w, _ := newTestWatcher(t)
	real := w.Snapshot()

	// Fake a better previous state so Compare keeps reporting a regression.
	better := &WatchState{
		ScanQuality:       validator.QualityFull,
		CompletenessScore: 100,
		ConfigExists:      true,
		LanguageCount:     1,
		languages:         real.languages,
		missingCritical:   map[string]bool{},
		warningCodes:      map[string]bool{},
	}

	w.previous = better
	first := w.Check()
	if len(first) == 0 {
		t.Fatal("expected alerts on the first regression check")
	}

	w.previous = better
	second := w.Check()
	if len(second) != 0 {
		t.Errorf("identical alerts must be suppressed on the next cycle, got %v", second)
	}
}
