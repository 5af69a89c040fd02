package suggest

import (
	"strings"
	"testing"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/propfile"
	"github.com/scanready/scanready/internal/validator"
)

func resultWithLanguage() *validator.PreScanValidationResult {
	return &validator.PreScanValidationResult{
		ProjectPath: "/tmp/demo",
		Languages: []analyzer.LanguageAnalysisResult{
			{Detected: true, Language: "go", BuildTool: "go"},
		},
		ExistingConfig: propfile.ExistingConfigAnalysis{
			Path: "/tmp/demo/sonar-project.properties",
		},
		DetectedProperties: []analyzer.DetectedProperty{
			{Key: "sonar.sources", Value: "."},
		},
		CanProceed: true,
	}
}

func TestMissingConfigFile_FiresWithoutConfig(t *testing.T) {
	result := resultWithLanguage()

	got := MissingConfigFile(&Context{Result: result})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Priority != PriorityCritical {
		t.Errorf("Priority = %d, want critical", got[0].Priority)
	}
	if !strings.Contains(got[0].Description, result.ExistingConfig.Path) {
		t.Errorf("description should name the expected path: %q", got[0].Description)
	}

	result.ExistingConfig.Exists = true
	if got := MissingConfigFile(&Context{Result: result}); got != nil {
		t.Errorf("should not fire when the file exists, got %v", got)
	}
}

func TestMissingCriticalConfig_ListsKeys(t *testing.T) {
	result := resultWithLanguage()
	result.ExistingConfig.Exists = true
	result.ExistingConfig.MissingCritical = []string{"sonar.sources", "sonar.java.binaries"}

	got := MissingCriticalConfig(&Context{Result: result})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Title != "Set 2 missing critical properties" {
		t.Errorf("Title = %q", got[0].Title)
	}
	if !strings.Contains(got[0].Description, "sonar.java.binaries") {
		t.Errorf("description should list the missing keys: %q", got[0].Description)
	}
}

func TestLowCompleteness_ThresholdAt50(t *testing.T) {
	result := resultWithLanguage()
	result.ExistingConfig.Exists = true
	result.ExistingConfig.CompletenessScore = 50

	if got := LowCompleteness(&Context{Result: result}); got != nil {
		t.Errorf("score 50 should not fire, got %v", got)
	}

	result.ExistingConfig.CompletenessScore = 49
	got := LowCompleteness(&Context{Result: result})
	if len(got) != 1 || got[0].Priority != PriorityHigh {
		t.Fatalf("score 49 should fire a high-priority suggestion, got %v", got)
	}
}

func TestMissingBuildOutput_CarriesSuggestion(t *testing.T) {
	result := resultWithLanguage()
	result.Warnings = []analyzer.ValidationWarning{
		{Code: "MISSING_BINARIES", Severity: analyzer.SeverityWarning, Message: "no compiled classes found", Suggestion: "run mvn compile first"},
		{Code: "NO_GO_MOD", Severity: analyzer.SeverityInfo, Message: "no go.mod"},
	}

	got := MissingBuildOutput(&Context{Result: result})
	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if !strings.Contains(got[0].Description, "run mvn compile first") {
		t.Errorf("description should include the warning suggestion: %q", got[0].Description)
	}
}

func TestNoCoverageReports_SilencedByCoverageProperty(t *testing.T) {
	result := resultWithLanguage()

	if got := NoCoverageReports(&Context{Result: result}); len(got) != 1 {
		t.Fatalf("expected a coverage suggestion, got %v", got)
	}

	result.DetectedProperties = append(result.DetectedProperties, analyzer.DetectedProperty{
		Key: "sonar.go.coverage.reportPaths", Value: "coverage.out",
	})
	if got := NoCoverageReports(&Context{Result: result}); got != nil {
		t.Errorf("should not fire when a coverage property was detected, got %v", got)
	}
}

func TestEngineRun_RanksByImpact(t *testing.T) {
	result := resultWithLanguage()
	result.ExistingConfig.Exists = true
	result.ExistingConfig.CompletenessScore = 30
	result.ExistingConfig.MissingCritical = []string{"sonar.sources"}

	got := NewEngine().Run(&Context{Result: result})
	if len(got) < 2 {
		t.Fatalf("expected multiple suggestions, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ImpactScore > got[i-1].ImpactScore {
			t.Errorf("suggestions not sorted by impact: %f before %f", got[i-1].ImpactScore, got[i].ImpactScore)
		}
	}
}
