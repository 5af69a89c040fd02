package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scanready/scanready/internal/analyzer"
)

func newStubValidator(analyzers ...analyzer.Analyzer) *Validator {
	r := NewRegistry()
	for _, a := range analyzers {
		r.Register(a)
	}
	return New(r, "sonar-project.properties")
}

func TestValidate_EmptyProjectIsDegradedButProceeds(t *testing.T) {
	v := newStubValidator(
		&stubAnalyzer{lang: "java", detect: false},
		&stubAnalyzer{lang: "go", detect: false},
	)

	result := v.Validate(t.TempDir())

	if result.ScanQuality != QualityDegraded {
		t.Errorf("ScanQuality = %s, want %s", result.ScanQuality, QualityDegraded)
	}
	if !result.CanProceed {
		t.Error("CanProceed must always be true")
	}
	if result.Languages == nil || result.Warnings == nil || result.DetectedProperties == nil {
		t.Error("slices must be initialized, not nil")
	}
	if len(result.Languages) != 0 {
		t.Errorf("Languages = %v, want empty", result.Languages)
	}
}

func TestValidate_PanickingAnalyzerBecomesWarning(t *testing.T) {
	detected := analyzer.LanguageAnalysisResult{
		Language: "go",
		Detected: true,
		Properties: []analyzer.DetectedProperty{
			analyzer.Property("sonar.sources", ".", analyzer.ConfidenceHigh, "go.mod"),
		},
	}

	v := newStubValidator(
		&stubAnalyzer{lang: "java", panics: true},
		&stubAnalyzer{lang: "go", detect: true, result: detected, critical: []string{"sonar.sources"}},
	)

	result := v.Validate(t.TempDir())

	var analyzerError *analyzer.ValidationWarning
	for i := range result.Warnings {
		if result.Warnings[i].Code == "ANALYZER_ERROR" {
			analyzerError = &result.Warnings[i]
		}
	}
	if analyzerError == nil {
		t.Fatal("expected an ANALYZER_ERROR warning for the panicking analyzer")
	}
	if analyzerError.Severity != analyzer.SeverityWarning {
		t.Errorf("ANALYZER_ERROR severity = %s, want %s", analyzerError.Severity, analyzer.SeverityWarning)
	}

	// The remaining analyzer still ran.
	if len(result.Languages) != 1 || result.Languages[0].Language != "go" {
		t.Errorf("Languages = %v, want the go analyzer's result", result.Languages)
	}
	if !result.CanProceed {
		t.Error("CanProceed must remain true after an analyzer failure")
	}
}

func TestValidate_FullQuality(t *testing.T) {
	dir := t.TempDir()
	propsPath := filepath.Join(dir, "sonar-project.properties")
	if err := os.WriteFile(propsPath, []byte("sonar.sources=.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	detected := analyzer.LanguageAnalysisResult{
		Language: "go",
		Detected: true,
		Properties: []analyzer.DetectedProperty{
			analyzer.Property("sonar.sources", ".", analyzer.ConfidenceHigh, "go.mod"),
		},
	}

	v := newStubValidator(&stubAnalyzer{
		lang: "go", detect: true, result: detected,
		critical: []string{"sonar.sources"},
	})

	result := v.Validate(dir)

	if result.ScanQuality != QualityFull {
		t.Errorf("ScanQuality = %s, want %s", result.ScanQuality, QualityFull)
	}
	if len(result.MissingCritical) != 0 {
		t.Errorf("MissingCritical = %v, want empty", result.MissingCritical)
	}
	if !result.ExistingConfig.Exists {
		t.Error("expected the configuration file to be found")
	}
	if result.ExistingConfig.CompletenessScore != 100 {
		t.Errorf("CompletenessScore = %d, want 100", result.ExistingConfig.CompletenessScore)
	}
}

func TestValidate_MissingCriticalMeansPartial(t *testing.T) {
	detected := analyzer.LanguageAnalysisResult{
		Language: "java",
		Detected: true,
		Properties: []analyzer.DetectedProperty{
			analyzer.Property("sonar.sources", "src/main/java", analyzer.ConfidenceHigh, "pom.xml"),
		},
	}

	v := newStubValidator(&stubAnalyzer{
		lang: "java", detect: true, result: detected,
		critical: []string{"sonar.sources", "sonar.java.binaries"},
	})

	result := v.Validate(t.TempDir())

	if result.ScanQuality != QualityPartial {
		t.Errorf("ScanQuality = %s, want %s", result.ScanQuality, QualityPartial)
	}
	if len(result.MissingCritical) != 1 || result.MissingCritical[0] != "sonar.java.binaries" {
		t.Errorf("MissingCritical = %v, want [sonar.java.binaries]", result.MissingCritical)
	}
}

func TestValidate_ErrorWarningMeansPartial(t *testing.T) {
	detected := analyzer.LanguageAnalysisResult{
		Language: "java",
		Detected: true,
		Properties: []analyzer.DetectedProperty{
			analyzer.Property("sonar.sources", "src", analyzer.ConfidenceHigh, "pom.xml"),
			analyzer.Property("sonar.java.binaries", "target/classes", analyzer.ConfidenceHigh, "pom.xml"),
		},
		Warnings: []analyzer.ValidationWarning{
			analyzer.Warn("MISSING_BINARIES", analyzer.SeverityError, "no compiled classes found", "run the build first"),
		},
	}

	v := newStubValidator(&stubAnalyzer{
		lang: "java", detect: true, result: detected,
		critical: []string{"sonar.sources", "sonar.java.binaries"},
	})

	result := v.Validate(t.TempDir())

	if result.ScanQuality != QualityPartial {
		t.Errorf("ScanQuality = %s, want %s (error warning forces partial)", result.ScanQuality, QualityPartial)
	}
}

func TestValidate_DuplicateDeclaredKeysDeduplicated(t *testing.T) {
	goResult := analyzer.LanguageAnalysisResult{Language: "go", Detected: true}
	jsResult := analyzer.LanguageAnalysisResult{Language: "javascript", Detected: true}

	v := newStubValidator(
		&stubAnalyzer{lang: "go", detect: true, result: goResult, critical: []string{"sonar.sources"}},
		&stubAnalyzer{lang: "javascript", detect: true, result: jsResult, critical: []string{"sonar.sources"}},
	)

	result := v.Validate(t.TempDir())

	if len(result.MissingCritical) != 1 {
		t.Errorf("MissingCritical = %v, want a single deduplicated entry", result.MissingCritical)
	}
}

func TestValidate_RealGoProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.22\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := New(DefaultRegistry(), "sonar-project.properties")
	result := v.Validate(dir)

	if len(result.Languages) != 1 || result.Languages[0].Language != "go" {
		t.Fatalf("Languages = %v, want only go", result.Languages)
	}
	if result.ScanQuality == QualityDegraded {
		t.Error("a detected language must not be degraded")
	}

	found := false
	for _, p := range result.DetectedProperties {
		if p.Key == "sonar.sources" && p.Value == "." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sonar.sources=. among %v", result.DetectedProperties)
	}
}
