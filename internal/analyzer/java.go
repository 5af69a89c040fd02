package analyzer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// JavaAnalyzer detects Maven and Gradle projects. It is the only analyzer
// that attempts dependency-classpath resolution via an external build-tool
// invocation; that call is bounded by ResolveTimeout and degrades to a
// low-severity warning when it cannot complete.
type JavaAnalyzer struct {
	// ResolveTimeout bounds the classpath-resolution subprocess. Zero
	// disables resolution entirely.
	ResolveTimeout time.Duration
}

// NewJavaAnalyzer returns a JavaAnalyzer with the default 30s resolve timeout.
func NewJavaAnalyzer() *JavaAnalyzer {
	return &JavaAnalyzer{ResolveTimeout: 30 * time.Second}
}

var javaVersionPatterns = []versionPattern{
	{"maven.compiler.release property", regexp.MustCompile(`<maven\.compiler\.release>\s*([0-9.]+)\s*</maven\.compiler\.release>`)},
	{"maven.compiler.source property", regexp.MustCompile(`<maven\.compiler\.source>\s*([0-9.]+)\s*</maven\.compiler\.source>`)},
	{"java.version property", regexp.MustCompile(`<java\.version>\s*([0-9.]+)\s*</java\.version>`)},
	{"gradle toolchain languageVersion", regexp.MustCompile(`JavaLanguageVersion\.of\(\s*(\d+)\s*\)`)},
	{"gradle sourceCompatibility", regexp.MustCompile(`sourceCompatibility\s*=?\s*['"]?(?:JavaVersion\.VERSION_)?([0-9_.]+)['"]?`)},
}

var (
	mavenModulePattern   = regexp.MustCompile(`<module>\s*([^<\s][^<]*?)\s*</module>`)
	gradleIncludePattern = regexp.MustCompile(`include\s*\(?\s*['":]+([\w./:-]+)['"]?`)
)

func (a *JavaAnalyzer) Language() string { return "java" }

func (a *JavaAnalyzer) Detect(projectPath string) bool {
	return anyFileExists(projectPath,
		"pom.xml",
		"build.gradle",
		"build.gradle.kts",
		"settings.gradle",
		"settings.gradle.kts",
	)
}

// CriticalProperties lists keys a Java scan cannot run correctly without.
func (a *JavaAnalyzer) CriticalProperties() []string {
	return []string{"sonar.sources", "sonar.java.binaries"}
}

func (a *JavaAnalyzer) RecommendedProperties() []string {
	return []string{
		"sonar.java.source",
		"sonar.tests",
		"sonar.junit.reportPaths",
		"sonar.coverage.jacoco.xmlReportPaths",
		"sonar.java.libraries",
	}
}

func (a *JavaAnalyzer) Analyze(projectPath string) LanguageAnalysisResult {
	result := LanguageAnalysisResult{
		Detected: true,
		Language: "java",
	}

	isMaven := fileExists(projectPath, "pom.xml")
	if isMaven {
		result.BuildTool = "maven"
	} else {
		result.BuildTool = "gradle"
	}

	// Source directories.
	if src, ok := firstExistingDir(projectPath, "src/main/java"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceHigh, "standard Maven/Gradle layout"))
	} else if src, ok := firstExistingDir(projectPath, "src", "source"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.sources", src, ConfidenceMedium, "non-standard source directory"))
	} else {
		result.Properties = append(result.Properties,
			Property("sonar.sources", ".", ConfidenceLow, "fallback: project root"))
	}

	// Test directories.
	if tst, ok := firstExistingDir(projectPath, "src/test/java"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.tests", tst, ConfidenceHigh, "standard Maven/Gradle test layout"))
	} else if tst, ok := firstExistingDir(projectPath, "test", "tests"); ok {
		result.Properties = append(result.Properties,
			Property("sonar.tests", tst, ConfidenceMedium, "non-standard test directory"))
	}

	// Compiled output. Sonar's Java analysis requires bytecode, so a missing
	// output directory is worth a warning even though analysis continues.
	binaryCandidates := []string{"target/classes"}
	if !isMaven {
		binaryCandidates = []string{"build/classes/java/main", "build/classes"}
	}
	if bin, ok := firstExistingDir(projectPath, binaryCandidates...); ok {
		result.Properties = append(result.Properties,
			Property("sonar.java.binaries", bin, ConfidenceHigh, "compiled output directory"))
	} else {
		buildCmd := "mvn compile"
		if !isMaven {
			buildCmd = "gradle classes"
		}
		result.Warnings = append(result.Warnings, Warn(
			"MISSING_BINARIES",
			SeverityWarning,
			fmt.Sprintf("no compiled classes found (looked for %s)", strings.Join(binaryCandidates, ", ")),
			fmt.Sprintf("run '%s' before scanning so sonar.java.binaries can be set", buildCmd),
		))
	}

	// Java version from the build manifest.
	manifest := "pom.xml"
	if !isMaven {
		if fileExists(projectPath, "build.gradle") {
			manifest = "build.gradle"
		} else {
			manifest = "build.gradle.kts"
		}
	}
	if content, ok := readText(projectPath, manifest); ok {
		if version, purpose := extractVersion(content, javaVersionPatterns); version != "" {
			result.Version = strings.ReplaceAll(version, "_", ".")
			result.Properties = append(result.Properties,
				Property("sonar.java.source", result.Version, ConfidenceHigh,
					fmt.Sprintf("%s in %s", purpose, manifest)))
		}
		result.Modules = a.discoverModules(projectPath, manifest, content, isMaven)
	}

	// Test and coverage report artifacts at conventional paths.
	if dirExists(projectPath, "target/surefire-reports") {
		result.Properties = append(result.Properties,
			Property("sonar.junit.reportPaths", "target/surefire-reports", ConfidenceHigh, "Surefire report directory"))
	}
	if fileExists(projectPath, "target/site/jacoco/jacoco.xml") {
		result.Properties = append(result.Properties,
			Property("sonar.coverage.jacoco.xmlReportPaths", "target/site/jacoco/jacoco.xml", ConfidenceHigh, "JaCoCo XML report"))
	} else if fileExists(projectPath, "build/reports/jacoco/test/jacocoTestReport.xml") {
		result.Properties = append(result.Properties,
			Property("sonar.coverage.jacoco.xmlReportPaths", "build/reports/jacoco/test/jacocoTestReport.xml", ConfidenceHigh, "JaCoCo XML report"))
	}

	// Best-effort classpath resolution, Maven only.
	if isMaven && a.ResolveTimeout > 0 {
		switch res := resolveMavenClasspath(projectPath, a.ResolveTimeout); res.Status {
		case ClasspathResolved:
			result.Properties = append(result.Properties,
				Property("sonar.java.libraries", strings.Join(res.Paths, ","), ConfidenceMedium,
					"mvn dependency:build-classpath"))
		case ClasspathTimedOut:
			result.Warnings = append(result.Warnings, Warn(
				"CLASSPATH_TIMEOUT",
				SeverityInfo,
				fmt.Sprintf("dependency resolution did not finish within %s", a.ResolveTimeout),
				"set sonar.java.libraries manually for full bytecode analysis",
			))
		case ClasspathFailed:
			result.Warnings = append(result.Warnings, Warn(
				"CLASSPATH_UNRESOLVED",
				SeverityInfo,
				fmt.Sprintf("dependency resolution failed: %s", res.Reason),
				"set sonar.java.libraries manually for full bytecode analysis",
			))
		}
	}

	return result
}

// discoverModules parses declared sub-projects out of the root manifest with
// a narrow text pattern and synthesizes conventional module layouts.
func (a *JavaAnalyzer) discoverModules(projectPath, manifest, content string, isMaven bool) []ModuleInfo {
	var names []string
	buildFile := "pom.xml"
	tool := "maven"

	if isMaven {
		names = extractAll(content, mavenModulePattern)
	} else {
		tool = "gradle"
		buildFile = "build.gradle"
		settings := "settings.gradle"
		if !fileExists(projectPath, settings) {
			settings = "settings.gradle.kts"
		}
		if sc, ok := readText(projectPath, settings); ok {
			names = extractAll(sc, gradleIncludePattern)
		}
	}

	modules := make([]ModuleInfo, 0, len(names))
	for _, name := range names {
		rel := strings.ReplaceAll(strings.TrimPrefix(name, ":"), ":", "/")
		mod := ModuleInfo{
			Name:         name,
			RelativePath: rel,
			Languages:    []string{"java"},
			SourceDirs:   []string{filepath.ToSlash(filepath.Join(rel, "src/main/java"))},
			TestDirs:     []string{filepath.ToSlash(filepath.Join(rel, "src/test/java"))},
			BuildFile:    filepath.ToSlash(filepath.Join(rel, buildFile)),
			BuildTool:    tool,
		}
		if isMaven {
			mod.BinaryDirs = []string{filepath.ToSlash(filepath.Join(rel, "target/classes"))}
		} else {
			mod.BinaryDirs = []string{filepath.ToSlash(filepath.Join(rel, "build/classes/java/main"))}
		}
		modules = append(modules, mod)
	}
	return modules
}
