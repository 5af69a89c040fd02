package validator

import (
	"fmt"
	"path/filepath"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/propfile"
)

// ScanQuality is the orchestrator's overall verdict.
type ScanQuality string

const (
	// QualityFull means every detected critical property is configured
	// and no analyzer reported an error-severity warning.
	QualityFull ScanQuality = "full"

	// QualityPartial means the scan will run but with missing critical
	// configuration or error-level findings.
	QualityPartial ScanQuality = "partial"

	// QualityDegraded means no analyzer detected any language at all.
	QualityDegraded ScanQuality = "degraded"
)

// PreScanValidationResult is the full aggregated output of a validation run.
type PreScanValidationResult struct {
	ProjectPath        string                            `json:"project_path"`
	Languages          []analyzer.LanguageAnalysisResult `json:"languages"`
	ExistingConfig     propfile.ExistingConfigAnalysis   `json:"existing_config"`
	DetectedProperties []analyzer.DetectedProperty       `json:"detected_properties"`
	Warnings           []analyzer.ValidationWarning      `json:"warnings"`
	MissingCritical    []string                          `json:"missing_critical"`
	MissingRecommended []string                          `json:"missing_recommended"`
	ScanQuality        ScanQuality                       `json:"scan_quality"`

	// CanProceed is always true: validation advises, it never blocks.
	CanProceed bool `json:"can_proceed"`
}

// Validator runs every registered analyzer against a project path and
// aggregates their findings.
type Validator struct {
	registry  *Registry
	propsFile string
}

// New creates a Validator. propsFile is the configuration file name looked
// up relative to the project root, e.g. "sonar-project.properties".
func New(registry *Registry, propsFile string) *Validator {
	return &Validator{registry: registry, propsFile: propsFile}
}

// Validate probes the project with every registered analyzer in insertion
// order, scores the existing configuration file, and computes the overall
// scan-quality verdict. It never fails: an analyzer that panics becomes an
// ANALYZER_ERROR warning and the remaining analyzers still run.
func (v *Validator) Validate(projectPath string) PreScanValidationResult {
	result := PreScanValidationResult{
		ProjectPath:        projectPath,
		Languages:          []analyzer.LanguageAnalysisResult{},
		DetectedProperties: []analyzer.DetectedProperty{},
		Warnings:           []analyzer.ValidationWarning{},
		MissingCritical:    []string{},
		MissingRecommended: []string{},
		CanProceed:         true,
	}

	var declaredCritical, declaredRecommended []string

	for _, a := range v.registry.Analyzers() {
		lang, res, ok := runAnalyzer(a, projectPath)
		if !ok {
			result.Warnings = append(result.Warnings, analyzer.Warn(
				"ANALYZER_ERROR",
				analyzer.SeverityWarning,
				fmt.Sprintf("the %s analyzer failed; its findings are unavailable", lang),
				"",
			))
			continue
		}
		if !res.Detected {
			continue
		}

		result.Languages = append(result.Languages, res)
		result.DetectedProperties = append(result.DetectedProperties, res.Properties...)
		result.Warnings = append(result.Warnings, res.Warnings...)

		// Declared lists are concatenated as-is; duplicates across
		// analyzers are harmless because the missing computation below
		// works on key sets.
		declaredCritical = append(declaredCritical, a.CriticalProperties()...)
		declaredRecommended = append(declaredRecommended, a.RecommendedProperties()...)
	}

	propsPath := filepath.Join(projectPath, v.propsFile)
	result.ExistingConfig = propfile.Score(propsPath, result.DetectedProperties, declaredCritical, declaredRecommended)

	detectedKeys := make(map[string]bool, len(result.DetectedProperties))
	for _, p := range result.DetectedProperties {
		detectedKeys[p.Key] = true
	}
	result.MissingCritical = missingFrom(declaredCritical, detectedKeys)
	result.MissingRecommended = missingFrom(declaredRecommended, detectedKeys)

	result.ScanQuality = computeQuality(result)
	return result
}

// runAnalyzer wraps the detect/analyze pair in a panic boundary so one
// misbehaving analyzer cannot abort the run. Partial results beat none.
func runAnalyzer(a analyzer.Analyzer, projectPath string) (lang string, res analyzer.LanguageAnalysisResult, ok bool) {
	lang = a.Language()
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	if !a.Detect(projectPath) {
		return lang, analyzer.LanguageAnalysisResult{}, true
	}
	return lang, a.Analyze(projectPath), true
}

// missingFrom returns the declared keys absent from the detected key set,
// deduplicated, in declaration order.
func missingFrom(declared []string, detected map[string]bool) []string {
	out := []string{}
	seen := make(map[string]bool, len(declared))
	for _, k := range declared {
		if detected[k] || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// computeQuality derives the verdict from order-independent signals:
// degraded iff nothing was detected; partial when critical configuration is
// missing or any error-severity warning was raised; full otherwise.
func computeQuality(r PreScanValidationResult) ScanQuality {
	if len(r.Languages) == 0 {
		return QualityDegraded
	}
	if len(r.MissingCritical) > 0 {
		return QualityPartial
	}
	for _, w := range r.Warnings {
		if w.Severity == analyzer.SeverityError {
			return QualityPartial
		}
	}
	return QualityFull
}
