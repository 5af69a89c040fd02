// Package recovery decides whether a failed scan can be repaired by
// regenerating the configuration file, and produces the regenerated
// content when it can.
package recovery

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/scanready/scanready/internal/classifier"
	"github.com/scanready/scanready/internal/propfile"
	"github.com/scanready/scanready/internal/validator"
)

// Plan is the coordinator's decision for one failed scan.
type Plan struct {
	// Error is the classified failure.
	Error classifier.ParsedScanError `json:"error"`

	// Recoverable mirrors the classifier's verdict for the category.
	Recoverable bool `json:"recoverable"`

	// Recommendation is the fixed per-category instruction.
	Recommendation string `json:"recommendation"`

	// Validation is populated only for recoverable failures.
	Validation *validator.PreScanValidationResult `json:"validation,omitempty"`

	// Regenerate reports whether a new configuration should be written.
	Regenerate bool `json:"regenerate"`

	// Properties is the regenerated configuration (empty unless Regenerate).
	Properties map[string]string `json:"properties,omitempty"`

	// Rendered is the regenerated file content in properties format.
	Rendered string `json:"rendered,omitempty"`
}

// Coordinator combines a classified scan error with a structural analysis
// of the project to produce a recovery plan.
type Coordinator struct {
	validator *validator.Validator
}

// New creates a Coordinator around the given validator.
func New(v *validator.Validator) *Coordinator {
	return &Coordinator{validator: v}
}

// Plan classifies rawError and, only when the category is recoverable,
// runs validation and regenerates configuration from the detected
// properties. Classification always happens before any analyzer runs:
// recoverability gates whether regeneration is attempted at all.
func (c *Coordinator) Plan(projectPath, rawError string) Plan {
	parsed := classifier.Classify(rawError)
	plan := Plan{
		Error:          parsed,
		Recoverable:    classifier.IsRecoverable(parsed),
		Recommendation: classifier.RecoveryRecommendation(parsed),
	}

	if !plan.Recoverable {
		return plan
	}

	result := c.validator.Validate(projectPath)
	plan.Validation = &result

	if len(result.Languages) == 0 || len(result.DetectedProperties) == 0 {
		// Nothing detected; regenerating would produce an empty file.
		return plan
	}

	plan.Properties = buildProperties(projectPath, &result)
	plan.Rendered = propfile.Render(plan.Properties, regenHeader(parsed.Category))
	plan.Regenerate = true
	return plan
}

// buildProperties flattens the detected properties into one configuration
// map. When several analyzers detect the same key, the highest-confidence
// value wins; on a tie the earliest detection is kept.
func buildProperties(projectPath string, result *validator.PreScanValidationResult) map[string]string {
	rank := map[string]int{"high": 3, "medium": 2, "low": 1}

	props := make(map[string]string)
	best := make(map[string]int)
	for _, p := range result.DetectedProperties {
		r := rank[string(p.Confidence)]
		if r <= best[p.Key] {
			continue
		}
		best[p.Key] = r
		props[p.Key] = p.Value
	}

	if _, ok := props["sonar.projectKey"]; !ok {
		props["sonar.projectKey"] = filepath.Base(projectPath)
	}
	return props
}

// regenHeader builds the comment block written at the top of a regenerated
// properties file.
func regenHeader(cat classifier.Category) string {
	return fmt.Sprintf("regenerated by scanready on %s\nprevious scan failed with %s",
		time.Now().UTC().Format("2006-01-02"), cat)
}
