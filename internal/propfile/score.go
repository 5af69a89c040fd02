package propfile

import (
	"math"

	"github.com/scanready/scanready/internal/analyzer"
)

// Scoring weights for the two property categories. Critical configuration
// dominates the completeness score.
const (
	WeightCritical    = 60.0
	WeightRecommended = 40.0
)

// ExistingConfigAnalysis is the completeness verdict for a configuration
// file on disk, compared against what the analyzers detected.
type ExistingConfigAnalysis struct {
	// Exists reports whether the file could be read.
	Exists bool `json:"exists"`

	// Path is the location that was checked.
	Path string `json:"path"`

	// Properties holds the parsed key/value pairs (nil when absent).
	Properties map[string]string `json:"properties,omitempty"`

	// MissingCritical lists critical keys that an analyzer detected but
	// the file does not set.
	MissingCritical []string `json:"missing_critical"`

	// MissingRecommended lists recommended keys detected but absent.
	MissingRecommended []string `json:"missing_recommended"`

	// CompletenessScore is 0-100.
	CompletenessScore int `json:"completeness_score"`
}

// Score compares an existing configuration file against the detected
// properties. Only keys that are both declared by an analyzer and actually
// detected count: a critical key no analyzer found has nothing to
// recommend, so it cannot lower the score.
//
// A category with zero detected-and-applicable keys contributes its full
// weight. The weighted-score tests depend on this behavior.
func Score(path string, detected []analyzer.DetectedProperty, criticalKeys, recommendedKeys []string) ExistingConfigAnalysis {
	out := ExistingConfigAnalysis{
		Path:               path,
		MissingCritical:    []string{},
		MissingRecommended: []string{},
	}

	detectedKeys := make(map[string]bool, len(detected))
	for _, p := range detected {
		detectedKeys[p.Key] = true
	}

	applicableCritical := intersect(criticalKeys, detectedKeys)
	applicableRecommended := intersect(recommendedKeys, detectedKeys)

	existing, ok := Parse(path)
	if !ok {
		// No file at all: score 0, everything applicable is missing.
		out.MissingCritical = applicableCritical
		out.MissingRecommended = applicableRecommended
		return out
	}

	out.Exists = true
	out.Properties = existing

	presentCritical := 0
	for _, k := range applicableCritical {
		if _, set := existing[k]; set {
			presentCritical++
		} else {
			out.MissingCritical = append(out.MissingCritical, k)
		}
	}

	presentRecommended := 0
	for _, k := range applicableRecommended {
		if _, set := existing[k]; set {
			presentRecommended++
		} else {
			out.MissingRecommended = append(out.MissingRecommended, k)
		}
	}

	out.CompletenessScore = weightedScore(
		presentCritical, len(applicableCritical),
		presentRecommended, len(applicableRecommended),
	)
	return out
}

// weightedScore combines the two category ratios into an integer 0-100.
// An empty category is treated as fully satisfied.
func weightedScore(presentCritical, totalCritical, presentRecommended, totalRecommended int) int {
	criticalPart := WeightCritical
	if totalCritical > 0 {
		criticalPart = WeightCritical * float64(presentCritical) / float64(totalCritical)
	}

	recommendedPart := WeightRecommended
	if totalRecommended > 0 {
		recommendedPart = WeightRecommended * float64(presentRecommended) / float64(totalRecommended)
	}

	return int(math.Round(criticalPart + recommendedPart))
}

// intersect returns the declared keys that appear in the detected set,
// preserving declaration order and dropping duplicates.
func intersect(declared []string, detected map[string]bool) []string {
	var out []string
	seen := make(map[string]bool, len(declared))
	for _, k := range declared {
		if detected[k] && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
