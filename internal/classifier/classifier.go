// Package classifier turns raw scanner failure output into a categorized,
// actionable diagnosis. Classification is a fixed, ordered pattern table;
// first match wins, so table order encodes precedence.
package classifier

import "regexp"

// Category is the closed set of scan failure categories.
type Category string

const (
	SourcesNotFound       Category = "SOURCES_NOT_FOUND"
	ModuleConfigError     Category = "MODULE_CONFIG_ERROR"
	BinaryPathMissing     Category = "BINARY_PATH_MISSING"
	ExclusionPatternError Category = "EXCLUSION_PATTERN_ERROR"
	LanguageNotDetected   Category = "LANGUAGE_NOT_DETECTED"
	PermissionDenied      Category = "PERMISSION_DENIED"
	ScannerNotFound       Category = "SCANNER_NOT_FOUND"
	Unknown               Category = "UNKNOWN"
)

// ParsedScanError is the structured diagnosis of one raw failure text.
type ParsedScanError struct {
	Category          Category `json:"category"`
	RawMessage        string   `json:"raw_message"`
	SuggestedFix      string   `json:"suggested_fix,omitempty"`
	AffectedPaths     []string `json:"affected_paths,omitempty"`
	MissingParameters []string `json:"missing_parameters,omitempty"`
}

// classificationRule maps a text pattern to a category plus an optional
// extractor that fills in category-specific detail.
type classificationRule struct {
	re       *regexp.Regexp
	category Category
	extract  func(raw string, e *ParsedScanError)
}

// rules is evaluated top to bottom; the first matching pattern decides the
// category. Do not reorder without revisiting the precedence tests.
var rules = []classificationRule{
	{
		re:       regexp.MustCompile(`(?i)unable to find source|no source files|source (?:dir|directory|folder)[^.\n]*(?:not exist|not found|missing)|sonar\.sources[^.\n]*(?:not exist|not found|invalid|missing)`),
		category: SourcesNotFound,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "point sonar.sources at an existing directory"
			e.MissingParameters = []string{"sonar.sources"}
			e.AffectedPaths = ExtractPaths(raw)
		},
	},
	{
		re:       regexp.MustCompile(`(?i)sonar\.modules|module ['"][^'"]*['"][^.\n]*(?:not found|undefined|missing|does not exist)|invalid module`),
		category: ModuleConfigError,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "align sonar.modules with the module directories that actually exist"
			e.MissingParameters = []string{"sonar.modules"}
			e.AffectedPaths = ExtractPaths(raw)
		},
	},
	{
		re:       regexp.MustCompile(`(?i)sonar\.java\.binaries|bytecode[^.\n]*(?:missing|not found)|binar(?:y|ies)[^.\n]*(?:missing|not found|empty)|please provide compiled class`),
		category: BinaryPathMissing,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "compile the project and set sonar.java.binaries to the class output directory"
			e.MissingParameters = []string{"sonar.java.binaries"}
			e.AffectedPaths = ExtractPaths(raw)
		},
	},
	{
		re:       regexp.MustCompile(`(?i)(?:exclusion|inclusion)[^.\n]*(?:pattern|invalid)|invalid[^.\n]*pattern[^.\n]*(?:exclusion|inclusion)|sonar\.(?:exclusions|inclusions)`),
		category: ExclusionPatternError,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "fix the glob syntax in sonar.exclusions / sonar.inclusions"
			e.MissingParameters = []string{"sonar.exclusions"}
		},
	},
	{
		re:       regexp.MustCompile(`(?i)no languages? detected|could not detect (?:the )?language|language[^.\n]*not supported`),
		category: LanguageNotDetected,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "verify sonar.sources covers directories containing analyzable files"
			e.MissingParameters = []string{"sonar.sources"}
		},
	},
	{
		re:       regexp.MustCompile(`(?i)permission denied|access denied|not authorized|unauthorized|forbidden|status 40[13]|eacces`),
		category: PermissionDenied,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "check the analysis token and file permissions; this is not a configuration problem"
			e.AffectedPaths = ExtractPaths(raw)
		},
	},
	{
		re:       regexp.MustCompile(`(?i)sonar-scanner[^.\n]*not (?:found|recognized)|command not found|executable file not found|no such file or directory[^.\n]*sonar`),
		category: ScannerNotFound,
		extract: func(raw string, e *ParsedScanError) {
			e.SuggestedFix = "install sonar-scanner and make sure it is on PATH"
		},
	},
}

// Classify runs the rule table against the raw failure text. RawMessage is
// always the verbatim input; an unmatched text falls through to Unknown.
func Classify(raw string) ParsedScanError {
	e := ParsedScanError{
		Category:   Unknown,
		RawMessage: raw,
	}
	for _, rule := range rules {
		if rule.re.MatchString(raw) {
			e.Category = rule.category
			if rule.extract != nil {
				rule.extract(raw, &e)
			}
			return e
		}
	}
	e.SuggestedFix = "inspect the scanner log; the failure did not match a known pattern"
	return e
}

// IsRecoverable reports whether the category can be addressed by
// regenerating configuration. Permission, tooling, and unknown failures
// need human intervention instead.
func IsRecoverable(e ParsedScanError) bool {
	switch e.Category {
	case SourcesNotFound, ModuleConfigError, BinaryPathMissing, ExclusionPatternError, LanguageNotDetected:
		return true
	default:
		return false
	}
}
