// Package suggest derives ranked improvement recommendations from a
// pre-scan validation result.
package suggest

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Suggestion represents an actionable improvement recommendation.
type Suggestion struct {
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactScore float64 `json:"impact_score"`
}

// Rule is a function that examines a validation result and produces zero
// or more suggestions.
type Rule func(ctx *Context) []Suggestion
