package validator

import (
	"testing"

	"github.com/scanready/scanready/internal/analyzer"
)

// stubAnalyzer is a minimal analyzer for registry and orchestration tests.
type stubAnalyzer struct {
	lang        string
	detect      bool
	result      analyzer.LanguageAnalysisResult
	critical    []string
	recommended []string
	panics      bool
}

func (s *stubAnalyzer) Language() string { return s.lang }

func (s *stubAnalyzer) Detect(projectPath string) bool {
	if s.panics {
		panic("stub analyzer exploded")
	}
	return s.detect
}

func (s *stubAnalyzer) Analyze(projectPath string) analyzer.LanguageAnalysisResult {
	return s.result
}

func (s *stubAnalyzer) CriticalProperties() []string    { return s.critical }
func (s *stubAnalyzer) RecommendedProperties() []string { return s.recommended }

func TestRegistry_InsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubAnalyzer{lang: "java"})
	r.Register(&stubAnalyzer{lang: "python"})
	r.Register(&stubAnalyzer{lang: "go"})

	analyzers := r.Analyzers()
	want := []string{"java", "python", "go"}
	for i, a := range analyzers {
		if a.Language() != want[i] {
			t.Errorf("analyzers[%d] = %s, want %s", i, a.Language(), want[i])
		}
	}
}

func TestRegistry_ReplacementDoesNotGrow(t *testing.T) {
	r := NewRegistry()
	first := &stubAnalyzer{lang: "java", detect: false}
	second := &stubAnalyzer{lang: "java", detect: true}

	r.Register(first)
	r.Register(&stubAnalyzer{lang: "python"})
	r.Register(second)

	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2 (replacement must not grow the registry)", r.Len())
	}

	// The replacement keeps java's original position.
	analyzers := r.Analyzers()
	if analyzers[0].Language() != "java" {
		t.Errorf("analyzers[0] = %s, want java (position preserved)", analyzers[0].Language())
	}
	if got := analyzers[0].(*stubAnalyzer); got != second {
		t.Error("expected the second java analyzer to replace the first in place")
	}
}

func TestDefaultRegistry_BuiltinOrder(t *testing.T) {
	r := DefaultRegistry()

	want := []string{"java", "python", "javascript", "go", "cpp"}
	analyzers := r.Analyzers()
	if len(analyzers) != len(want) {
		t.Fatalf("Len = %d, want %d", len(analyzers), len(want))
	}
	for i, a := range analyzers {
		if a.Language() != want[i] {
			t.Errorf("analyzers[%d] = %s, want %s", i, a.Language(), want[i])
		}
	}
}
