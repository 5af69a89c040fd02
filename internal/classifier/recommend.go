package classifier

// recommendations maps each category to a fixed recovery instruction. One
// entry per category, no dynamic assembly.
var recommendations = map[Category]string{
	SourcesNotFound:       "Regenerate the configuration so sonar.sources points at the detected source directories.",
	ModuleConfigError:     "Regenerate the configuration with the module list discovered from the build manifest.",
	BinaryPathMissing:     "Build the project, then regenerate the configuration so sonar.java.binaries points at the compiled output.",
	ExclusionPatternError: "Regenerate the configuration with validated exclusion patterns for the detected layout.",
	LanguageNotDetected:   "Regenerate the configuration so the scanner is pointed at directories containing analyzable files.",
	PermissionDenied:      "Verify the analysis token and filesystem permissions. Regenerating configuration will not help.",
	ScannerNotFound:       "Install sonar-scanner and ensure it is on PATH. Regenerating configuration will not help.",
	Unknown:               "Inspect the full scanner log manually; the failure did not match a known recoverable pattern.",
}

// RecoveryRecommendation returns the fixed instruction for the error's
// category.
func RecoveryRecommendation(e ParsedScanError) string {
	return recommendations[e.Category]
}
