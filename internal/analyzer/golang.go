package analyzer

import "regexp"

// GoAnalyzer detects Go modules.
type GoAnalyzer struct{}

func NewGoAnalyzer() *GoAnalyzer { return &GoAnalyzer{} }

var goVersionPatterns = []versionPattern{
	{"go directive in go.mod", regexp.MustCompile(`(?m)^go\s+([0-9]+(?:\.[0-9]+)*)`)},
	{"toolchain directive in go.mod", regexp.MustCompile(`(?m)^toolchain\s+go([0-9]+(?:\.[0-9]+)*)`)},
}

func (a *GoAnalyzer) Language() string { return "go" }

func (a *GoAnalyzer) Detect(projectPath string) bool {
	return anyFileExists(projectPath, "go.mod", "go.sum", "main.go")
}

func (a *GoAnalyzer) CriticalProperties() []string {
	return []string{"sonar.sources"}
}

func (a *GoAnalyzer) RecommendedProperties() []string {
	return []string{
		"sonar.exclusions",
		"sonar.test.inclusions",
		"sonar.go.coverage.reportPaths",
	}
}

func (a *GoAnalyzer) Analyze(projectPath string) LanguageAnalysisResult {
	result := LanguageAnalysisResult{
		Detected:  true,
		Language:  "go",
		BuildTool: "go",
	}

	// Go sources live at the module root; package directories are not
	// segregated from tests, so the scanner is pointed at "." with test
	// files carved out via inclusion patterns.
	result.Properties = append(result.Properties,
		Property("sonar.sources", ".", ConfidenceHigh, "Go module root"),
		Property("sonar.test.inclusions", "**/*_test.go", ConfidenceHigh, "Go test naming convention"),
	)

	if dirExists(projectPath, "vendor") {
		result.Properties = append(result.Properties,
			Property("sonar.exclusions", "vendor/**", ConfidenceHigh, "vendored dependencies"))
	}

	if content, ok := readText(projectPath, "go.mod"); ok {
		if version, purpose := extractVersion(content, goVersionPatterns); version != "" {
			result.Version = version
			result.Properties = append(result.Properties,
				Property("sonar.go.version", version, ConfidenceHigh, purpose))
		}
	} else {
		result.Warnings = append(result.Warnings, Warn(
			"NO_GO_MOD",
			SeverityInfo,
			"Go files detected without a go.mod",
			"initialize a module with 'go mod init' for reproducible analysis",
		))
	}

	if fileExists(projectPath, "coverage.out") {
		result.Properties = append(result.Properties,
			Property("sonar.go.coverage.reportPaths", "coverage.out", ConfidenceHigh, "go test coverprofile"))
	}

	return result
}
