package suggest

import (
	"fmt"
	"strings"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/validator"
)

// Context carries the data suggest rules operate on.
type Context struct {
	Result *validator.PreScanValidationResult
}

// MissingConfigFile fires when no properties file exists at all.
func MissingConfigFile(ctx *Context) []Suggestion {
	if ctx.Result.ExistingConfig.Exists || len(ctx.Result.Languages) == 0 {
		return nil
	}
	return []Suggestion{{
		Category:    "configuration",
		Priority:    PriorityCritical,
		Title:       "Create a scanner configuration file",
		Description: fmt.Sprintf("No configuration file was found at %s. Run 'scanready recover --apply' or create one from the detected properties.", ctx.Result.ExistingConfig.Path),
		ImpactScore: ComputeImpact(len(ctx.Result.DetectedProperties), 1.0, 20, 2),
	}}
}

// MissingCriticalConfig fires for critical keys detected but absent from
// the existing file.
func MissingCriticalConfig(ctx *Context) []Suggestion {
	missing := ctx.Result.ExistingConfig.MissingCritical
	if !ctx.Result.ExistingConfig.Exists || len(missing) == 0 {
		return nil
	}
	return []Suggestion{{
		Category:    "configuration",
		Priority:    PriorityCritical,
		Title:       fmt.Sprintf("Set %d missing critical propert%s", len(missing), plural(len(missing), "y", "ies")),
		Description: fmt.Sprintf("The scan cannot run correctly without: %s.", strings.Join(missing, ", ")),
		ImpactScore: ComputeImpact(len(missing), 1.0, 30, 3),
	}}
}

// LowCompleteness fires when a file exists but scores under 50.
func LowCompleteness(ctx *Context) []Suggestion {
	cfg := ctx.Result.ExistingConfig
	if !cfg.Exists || cfg.CompletenessScore >= 50 {
		return nil
	}
	return []Suggestion{{
		Category:    "configuration",
		Priority:    PriorityHigh,
		Title:       fmt.Sprintf("Configuration is only %d%% complete", cfg.CompletenessScore),
		Description: "Most detected properties are not reflected in the existing file. Regenerating it will raise scan quality.",
		ImpactScore: ComputeImpact(len(cfg.MissingCritical)+len(cfg.MissingRecommended), 0.8, 15, 3),
	}}
}

// ErrorWarnings surfaces any error-severity analyzer warning.
func ErrorWarnings(ctx *Context) []Suggestion {
	var out []Suggestion
	for _, w := range ctx.Result.Warnings {
		if w.Severity != analyzer.SeverityError {
			continue
		}
		out = append(out, Suggestion{
			Category:    "analysis",
			Priority:    PriorityHigh,
			Title:       w.Code,
			Description: w.Message,
			ImpactScore: ComputeImpact(1, 1.0, 20, 5),
		})
	}
	return out
}

// MissingBuildOutput fires on warnings about absent compiled artifacts.
func MissingBuildOutput(ctx *Context) []Suggestion {
	var out []Suggestion
	for _, w := range ctx.Result.Warnings {
		if w.Code != "MISSING_BINARIES" && w.Code != "MISSING_COMPILE_COMMANDS" {
			continue
		}
		out = append(out, Suggestion{
			Category:    "build",
			Priority:    PriorityHigh,
			Title:       "Run the build before scanning",
			Description: w.Message + ". " + w.Suggestion,
			ImpactScore: ComputeImpact(1, 1.0, 25, 5),
		})
	}
	return out
}

// MultiModuleHint fires when a multi-module build was discovered but the
// existing file does not declare sonar.modules.
func MultiModuleHint(ctx *Context) []Suggestion {
	moduleCount := 0
	for _, lang := range ctx.Result.Languages {
		moduleCount += len(lang.Modules)
	}
	if moduleCount == 0 {
		return nil
	}
	if _, declared := ctx.Result.ExistingConfig.Properties["sonar.modules"]; declared {
		return nil
	}
	return []Suggestion{{
		Category:    "configuration",
		Priority:    PriorityMedium,
		Title:       fmt.Sprintf("Declare the %d discovered build module%s", moduleCount, plural(moduleCount, "", "s")),
		Description: "The build manifest declares sub-projects that the scanner configuration does not. Per-module source paths improve attribution.",
		ImpactScore: ComputeImpact(moduleCount, 0.7, 10, 4),
	}}
}

// NoCoverageReports fires when no coverage artifact was detected for any
// language.
func NoCoverageReports(ctx *Context) []Suggestion {
	if len(ctx.Result.Languages) == 0 {
		return nil
	}
	for _, p := range ctx.Result.DetectedProperties {
		if strings.Contains(p.Key, "coverage") || strings.Contains(p.Key, "lcov") {
			return nil
		}
	}
	return []Suggestion{{
		Category:    "coverage",
		Priority:    PriorityLow,
		Title:       "No coverage reports found",
		Description: "Generate coverage during the test run and re-validate so the report path can be configured.",
		ImpactScore: ComputeImpact(len(ctx.Result.Languages), 0.5, 10, 8),
	}}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
