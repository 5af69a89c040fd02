// Package analyzer provides per-language project analyzers that detect
// build-configuration facts ahead of a static-analysis scan. Each analyzer
// is self-contained: it probes a fixed set of marker files, locates
// conventional source/test/output directories, and extracts versions from
// build manifests with narrow text patterns. Analyzers never fail; every
// problem they encounter is reported as a ValidationWarning on the result.
package analyzer

// Confidence describes how canonical the discovery path for a detected
// property was. A standard-layout directory is high confidence; a fallback
// default is low.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Severity levels for validation warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DetectedProperty is a single scan-configuration fact discovered by an
// analyzer. Properties are immutable once produced; multiple analyzers may
// legally emit the same key.
type DetectedProperty struct {
	// Key is the dotted configuration key, e.g. "sonar.sources".
	Key string `json:"key"`

	// Value is the detected value for the key.
	Value string `json:"value"`

	// Confidence reflects how canonical the discovery was.
	Confidence Confidence `json:"confidence"`

	// Source records where the value came from, e.g. "standard Maven layout".
	// Always non-empty.
	Source string `json:"source"`
}

// ValidationWarning is a non-fatal finding produced during analysis.
type ValidationWarning struct {
	Code       string   `json:"code"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ModuleInfo describes one sub-project of a multi-module build.
type ModuleInfo struct {
	Name         string   `json:"name"`
	RelativePath string   `json:"relative_path"`
	Languages    []string `json:"languages"`
	SourceDirs   []string `json:"source_dirs"`
	TestDirs     []string `json:"test_dirs"`
	BinaryDirs   []string `json:"binary_dirs,omitempty"`
	BuildFile    string   `json:"build_file,omitempty"`
	BuildTool    string   `json:"build_tool,omitempty"`
}

// LanguageAnalysisResult is the per-language outcome of an Analyze call.
type LanguageAnalysisResult struct {
	Detected   bool                `json:"detected"`
	Language   string              `json:"language"`
	Version    string              `json:"version,omitempty"`
	BuildTool  string              `json:"build_tool,omitempty"`
	Modules    []ModuleInfo        `json:"modules,omitempty"`
	Properties []DetectedProperty  `json:"properties"`
	Warnings   []ValidationWarning `json:"warnings"`
}

// Analyzer is the capability contract shared by all language analyzers.
//
// Detect must be cheap and side-effect-free, and must return false (never
// panic) for a path that does not exist. Analyze is only called after Detect
// returns true; the orchestrator enforces that ordering.
type Analyzer interface {
	// Language returns the registry key for this analyzer, e.g. "java".
	Language() string

	// Detect reports whether the project at projectPath looks like a
	// project of this language, based on 1-6 marker files.
	Detect(projectPath string) bool

	// Analyze performs the deeper probing: source/test directories,
	// manifest version extraction, coverage artifacts, and module layout.
	Analyze(projectPath string) LanguageAnalysisResult

	// CriticalProperties lists the keys without which a scan cannot run
	// correctly for this language.
	CriticalProperties() []string

	// RecommendedProperties lists keys that improve scan quality but are
	// not mandatory.
	RecommendedProperties() []string
}

// Property constructs a DetectedProperty.
func Property(key, value string, confidence Confidence, source string) DetectedProperty {
	return DetectedProperty{Key: key, Value: value, Confidence: confidence, Source: source}
}

// Warn constructs a ValidationWarning.
func Warn(code string, severity Severity, message, suggestion string) ValidationWarning {
	return ValidationWarning{Code: code, Severity: severity, Message: message, Suggestion: suggestion}
}
