package analyzer

import (
	"fmt"
	"regexp"
)

// CppAnalyzer detects C and C++ projects built with CMake, Make, Meson, or
// autotools. Accurate C-family analysis needs a compilation database, so the
// analyzer's main job is locating compile_commands.json.
type CppAnalyzer struct{}

func NewCppAnalyzer() *CppAnalyzer { return &CppAnalyzer{} }

var cppStandardPatterns = []versionPattern{
	{"CMAKE_CXX_STANDARD", regexp.MustCompile(`(?i)set\s*\(\s*CMAKE_CXX_STANDARD\s+(\d+)`)},
	{"cxx_std compile feature", regexp.MustCompile(`cxx_std_(\d+)`)},
	{"-std= compiler flag", regexp.MustCompile(`-std=(?:gnu|c)\+\+(\w+)`)},
}

// compileCommandsCandidates are the conventional compilation-database paths,
// most canonical first.
var compileCommandsCandidates = []string{
	"compile_commands.json",
	"build/compile_commands.json",
	"out/compile_commands.json",
}

func (a *CppAnalyzer) Language() string { return "cpp" }

func (a *CppAnalyzer) Detect(projectPath string) bool {
	return anyFileExists(projectPath,
		"CMakeLists.txt",
		"Makefile",
		"meson.build",
		"configure.ac",
	) || anyFileExists(projectPath, compileCommandsCandidates...)
}

func (a *CppAnalyzer) CriticalProperties() []string {
	return []string{"sonar.sources"}
}

func (a *CppAnalyzer) RecommendedProperties() []string {
	return []string{
		"sonar.cfamily.compile-commands",
		"sonar.exclusions",
	}
}

func (a *CppAnalyzer) Analyze(projectPath string) LanguageAnalysisResult {
	result := LanguageAnalysisResult{
		Detected: true,
		Language: "cpp",
	}

	switch {
	case fileExists(projectPath, "CMakeLists.txt"):
		result.BuildTool = "cmake"
	case fileExists(projectPath, "meson.build"):
		result.BuildTool = "meson"
	case fileExists(projectPath, "configure.ac"):
		result.BuildTool = "autotools"
	default:
		result.BuildTool = "make"
	}

	if src, ok := firstExistingDir(projectPath, "src"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceHigh, "conventional src directory"))
	} else if src, ok := firstExistingDir(projectPath, "source", "lib", "include"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceMedium, "conventional C/C++ layout"))
	} else {
		result.Properties = append(result.Properties,
			Property("sonar.sources", ".", ConfidenceLow, "fallback: project root"))
	}

	if tst, ok := firstExistingDir(projectPath, "test", "tests"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.tests", tst, ConfidenceMedium, "conventional test directory"))
	}

	found := false
	for _, candidate := range compileCommandsCandidates {
		if fileExists(projectPath, candidate) {
			result.Properties = append(result.Properties,
				Property("sonar.cfamily.compile-commands", candidate, ConfidenceHigh, "compilation database"))
			found = true
			break
		}
	}
	if !found {
		suggestion := "generate a compilation database before scanning"
		if result.BuildTool == "cmake" {
			suggestion = "configure with cmake -DCMAKE_EXPORT_COMPILE_COMMANDS=ON and rebuild"
		}
		result.Warnings = append(result.Warnings, Warn(
			"MISSING_COMPILE_COMMANDS",
			SeverityWarning,
			fmt.Sprintf("no compile_commands.json found (looked at %d conventional paths)", len(compileCommandsCandidates)),
			suggestion,
		))
	}

	if result.BuildTool == "cmake" {
		if content, ok := readText(projectPath, "CMakeLists.txt"); ok {
			if std, purpose := extractVersion(content, cppStandardPatterns); std != "" {
				result.Version = "c++" + std
				result.Properties = append(result.Properties,
					Property("sonar.cfamily.standard", result.Version, ConfidenceMedium, purpose))
			}
		}
	}

	if dirExists(projectPath, "build") {
		result.Properties = append(result.Properties,
			Property("sonar.exclusions", "build/**", ConfidenceMedium, "out-of-tree build directory"))
	}

	return result
}
