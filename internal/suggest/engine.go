package suggest

// Engine runs all registered rules against a Context and collects the
// resulting suggestions.
type Engine struct {
	rules []Rule
}

// NewEngine creates a suggest engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			MissingConfigFile,
			MissingCriticalConfig,
			LowCompleteness,
			ErrorWarnings,
			MissingBuildOutput,
			MultiModuleHint,
			NoCoverageReports,
		},
	}
}

// Run executes all registered rules against the given context and returns
// the collected suggestions sorted by impact score (highest first).
func (e *Engine) Run(ctx *Context) []Suggestion {
	var all []Suggestion
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}
	return RankSuggestions(all)
}
