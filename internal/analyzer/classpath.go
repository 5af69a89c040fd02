package analyzer

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ClasspathStatus tags the outcome of a dependency-resolution attempt.
type ClasspathStatus string

const (
	ClasspathResolved ClasspathStatus = "resolved"
	ClasspathTimedOut ClasspathStatus = "timed_out"
	ClasspathFailed   ClasspathStatus = "failed"
)

// ClasspathResult is the tagged outcome of resolving a build tool's
// dependency classpath. Modeling the failure modes as data keeps the
// degrade-to-warning policy out of error-handling control flow.
type ClasspathResult struct {
	Status ClasspathStatus
	Paths  []string
	Reason string
}

// resolveMavenClasspath shells out to Maven's dependency plugin and parses
// artifact paths from stdout. The invocation is bounded by timeout; a
// timeout or non-zero exit is "could not resolve", never a fatal error.
func resolveMavenClasspath(projectPath string, timeout time.Duration) ClasspathResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "mvn", "--quiet", "--batch-mode", "dependency:build-classpath", "-Dmdep.outputFilterFile=false")
	cmd.Dir = projectPath

	out, err := cmd.Output()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ClasspathResult{Status: ClasspathTimedOut}
	}
	if err != nil {
		return ClasspathResult{Status: ClasspathFailed, Reason: err.Error()}
	}

	paths := parseClasspathOutput(string(out))
	if len(paths) == 0 {
		return ClasspathResult{Status: ClasspathFailed, Reason: "no artifact paths in build-classpath output"}
	}
	return ClasspathResult{Status: ClasspathResolved, Paths: paths}
}

// parseClasspathOutput extracts jar paths from dependency:build-classpath
// stdout. The plugin prints the classpath as one long separator-joined line
// among its log output; any line mentioning .jar is treated as classpath.
func parseClasspathOutput(out string) []string {
	var paths []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") || !strings.Contains(line, ".jar") {
			continue
		}
		for _, p := range splitClasspath(line) {
			p = strings.TrimSpace(p)
			if p == "" || !strings.HasSuffix(p, ".jar") || seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

// splitClasspath splits a classpath line on the platform separator. A
// semicolon anywhere means Windows-style; otherwise colons separate entries.
func splitClasspath(line string) []string {
	if strings.Contains(line, ";") {
		return strings.Split(line, ";")
	}
	return strings.Split(line, ":")
}
