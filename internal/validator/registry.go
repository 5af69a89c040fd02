// Package validator orchestrates the per-language analyzers into a single
// pre-scan readiness verdict for a project tree.
package validator

import "github.com/scanready/scanready/internal/analyzer"

// Registry holds the language analyzers in insertion order. Registering a
// second analyzer under an already-used language key replaces the first in
// place; the registry never grows on replacement.
type Registry struct {
	order  []string
	byLang map[string]analyzer.Analyzer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byLang: make(map[string]analyzer.Analyzer)}
}

// DefaultRegistry returns a registry pre-populated with the built-in
// analyzers: Java, Python, JavaScript/TypeScript, Go, and C/C++.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(analyzer.NewJavaAnalyzer())
	r.Register(analyzer.NewPythonAnalyzer())
	r.Register(analyzer.NewJavaScriptAnalyzer())
	r.Register(analyzer.NewGoAnalyzer())
	r.Register(analyzer.NewCppAnalyzer())
	return r
}

// Register adds an analyzer, silently replacing any existing entry for the
// same language key.
func (r *Registry) Register(a analyzer.Analyzer) {
	lang := a.Language()
	if _, exists := r.byLang[lang]; !exists {
		r.order = append(r.order, lang)
	}
	r.byLang[lang] = a
}

// Analyzers returns the registered analyzers in insertion order.
func (r *Registry) Analyzers() []analyzer.Analyzer {
	out := make([]analyzer.Analyzer, 0, len(r.order))
	for _, lang := range r.order {
		out = append(out, r.byLang[lang])
	}
	return out
}

// Len returns the number of registered analyzers.
func (r *Registry) Len() int {
	return len(r.order)
}
