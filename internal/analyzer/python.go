package analyzer

import (
	"fmt"
	"regexp"
)

// PythonAnalyzer detects Python projects from their packaging manifests.
type PythonAnalyzer struct{}

func NewPythonAnalyzer() *PythonAnalyzer { return &PythonAnalyzer{} }

var pythonVersionPatterns = []versionPattern{
	{"requires-python in pyproject.toml", regexp.MustCompile(`requires-python\s*=\s*["'][^0-9]*([0-9]+(?:\.[0-9]+)*)`)},
	{"python_requires in setup.cfg/setup.py", regexp.MustCompile(`python_requires\s*=\s*["']?[^0-9]*([0-9]+(?:\.[0-9]+)*)`)},
	{"tool.poetry python constraint", regexp.MustCompile(`python\s*=\s*["'][\^~>=]*([0-9]+(?:\.[0-9]+)*)`)},
}

func (a *PythonAnalyzer) Language() string { return "python" }

func (a *PythonAnalyzer) Detect(projectPath string) bool {
	return anyFileExists(projectPath,
		"pyproject.toml",
		"setup.py",
		"setup.cfg",
		"requirements.txt",
		"Pipfile",
		"poetry.lock",
	)
}

func (a *PythonAnalyzer) CriticalProperties() []string {
	return []string{"sonar.sources"}
}

func (a *PythonAnalyzer) RecommendedProperties() []string {
	return []string{
		"sonar.python.version",
		"sonar.tests",
		"sonar.python.coverage.reportPaths",
	}
}

func (a *PythonAnalyzer) Analyze(projectPath string) LanguageAnalysisResult {
	result := LanguageAnalysisResult{
		Detected: true,
		Language: "python",
	}

	switch {
	case fileExists(projectPath, "poetry.lock"):
		result.BuildTool = "poetry"
	case fileExists(projectPath, "Pipfile"):
		result.BuildTool = "pipenv"
	case fileExists(projectPath, "pyproject.toml"):
		result.BuildTool = "pip"
	case fileExists(projectPath, "setup.py"), fileExists(projectPath, "setup.cfg"):
		result.BuildTool = "setuptools"
	default:
		result.BuildTool = "pip"
	}

	if src, ok := firstExistingDir(projectPath, "src"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceHigh, "src layout"))
	} else if src, ok := firstExistingDir(projectPath, "app", "lib"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceMedium, "conventional package directory"))
	} else {
		result.Properties = append(result.Properties,
			Property("sonar.sources", ".", ConfidenceLow, "fallback: project root"))
	}

	if tst, ok := firstExistingDir(projectPath, "tests", "test"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.tests", tst, ConfidenceHigh, "conventional test directory"))
	}

	// Interpreter version from whichever manifest declares a constraint.
	for _, manifest := range []string{"pyproject.toml", "setup.cfg", "setup.py", "Pipfile"} {
		content, ok := readText(projectPath, manifest)
		if !ok {
			continue
		}
		if version, purpose := extractVersion(content, pythonVersionPatterns); version != "" {
			result.Version = version
			result.Properties = append(result.Properties,
				Property("sonar.python.version", version, ConfidenceHigh,
					fmt.Sprintf("%s (%s)", purpose, manifest)))
			break
		}
	}

	if fileExists(projectPath, "coverage.xml") {
		result.Properties = append(result.Properties,
			Property("sonar.python.coverage.reportPaths", "coverage.xml", ConfidenceHigh, "coverage.py XML report"))
	} else if fileExists(projectPath, ".coverage") {
		result.Warnings = append(result.Warnings, Warn(
			"COVERAGE_NOT_EXPORTED",
			SeverityInfo,
			"found a .coverage data file but no coverage.xml",
			"run 'coverage xml' so the report can be imported",
		))
	}

	return result
}
