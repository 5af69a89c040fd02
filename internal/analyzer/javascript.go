package analyzer

import "regexp"

// JavaScriptAnalyzer detects JavaScript and TypeScript projects. TypeScript
// is treated as the same analyzer with an extra tsconfig property rather
// than a separate registry entry.
type JavaScriptAnalyzer struct{}

func NewJavaScriptAnalyzer() *JavaScriptAnalyzer { return &JavaScriptAnalyzer{} }

var nodeVersionPatterns = []versionPattern{
	{"engines.node in package.json", regexp.MustCompile(`"node"\s*:\s*"[^0-9]*([0-9]+(?:\.[0-9x]+)*)`)},
	{".nvmrc version", regexp.MustCompile(`^v?([0-9]+(?:\.[0-9]+)*)`)},
}

func (a *JavaScriptAnalyzer) Language() string { return "javascript" }

func (a *JavaScriptAnalyzer) Detect(projectPath string) bool {
	return anyFileExists(projectPath,
		"package.json",
		"tsconfig.json",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
	)
}

func (a *JavaScriptAnalyzer) CriticalProperties() []string {
	return []string{"sonar.sources"}
}

func (a *JavaScriptAnalyzer) RecommendedProperties() []string {
	return []string{
		"sonar.exclusions",
		"sonar.tests",
		"sonar.javascript.lcov.reportPaths",
		"sonar.typescript.tsconfigPath",
	}
}

func (a *JavaScriptAnalyzer) Analyze(projectPath string) LanguageAnalysisResult {
	result := LanguageAnalysisResult{
		Detected: true,
		Language: "javascript",
	}

	switch {
	case fileExists(projectPath, "pnpm-lock.yaml"):
		result.BuildTool = "pnpm"
	case fileExists(projectPath, "yarn.lock"):
		result.BuildTool = "yarn"
	default:
		result.BuildTool = "npm"
	}

	if src, ok := firstExistingDir(projectPath, "src"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceHigh, "conventional src directory"))
	} else if src, ok := firstExistingDir(projectPath, "lib", "app"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceMedium, "conventional library directory"))
	} else {
		result.Properties = append(result.Properties,
			Property("sonar.sources", ".", ConfidenceLow, "fallback: project root"))
	}

	if tst, ok := firstExistingDir(projectPath, "test", "tests", "__tests__", "spec"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.tests", tst, ConfidenceHigh, "conventional test directory"))
	}

	// node_modules must always be excluded; emit it even when the directory
	// is absent so a regenerated config starts correct.
	result.Properties = append(result.Properties,
		Property("sonar.exclusions", "node_modules/**,dist/**,build/**", ConfidenceMedium, "standard JS exclusions"))

	if content, ok := readText(projectPath, "package.json"); ok {
		if version, purpose := extractVersion(content, nodeVersionPatterns); version != "" {
			result.Version = version
			result.Properties = append(result.Properties,
				Property("sonar.javascript.node.version", version, ConfidenceMedium, purpose))
		}
	} else if content, ok := readText(projectPath, ".nvmrc"); ok {
		if version, _ := extractVersion(content, nodeVersionPatterns[1:]); version != "" {
			result.Version = version
		}
	}

	if fileExists(projectPath, "tsconfig.json") {
		result.Language = "typescript"
		result.Properties = append(result.Properties,
			Property("sonar.typescript.tsconfigPath", "tsconfig.json", ConfidenceHigh, "tsconfig.json at project root"))
	}

	if fileExists(projectPath, "coverage/lcov.info") {
		result.Properties = append(result.Properties,
			Property("sonar.javascript.lcov.reportPaths", "coverage/lcov.info", ConfidenceHigh, "LCOV report at conventional path"))
	}

	return result
}
