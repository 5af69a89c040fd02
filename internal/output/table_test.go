package output

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)

	tbl := NewTable("Project", "Score")
	tbl.AddRow("/proj/a", "95")
	tbl.AddRow("/proj/b", "87")

	output := tbl.Render()

	for _, want := range []string{"Project", "Score", "/proj/a", "/proj/b", "─"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	if output := tbl.Render(); output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestSetNoColor(t *testing.T) {
	// After SetNoColor(true), StyleHeader should render without ANSI.
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	if !IsNoColor() {
		t.Error("IsNoColor should report true")
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)

	full := ScoreBar(100, 10)
	if !strings.Contains(full, strings.Repeat("█", 10)) {
		t.Errorf("full score should fill the bar: %q", full)
	}
	if !strings.Contains(full, "100/100") {
		t.Errorf("expected score label in %q", full)
	}

	empty := ScoreBar(0, 10)
	if !strings.Contains(empty, strings.Repeat("░", 10)) {
		t.Errorf("zero score should leave the bar empty: %q", empty)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)

	if got := TrendArrow(0, true); got != "─" {
		t.Errorf("zero delta = %q, want dash", got)
	}
	if got := TrendArrow(12, true); !strings.Contains(got, "▲ +12.0") {
		t.Errorf("positive delta = %q", got)
	}
	if got := TrendArrow(-3, true); !strings.Contains(got, "▼ -3.0") {
		t.Errorf("negative delta = %q", got)
	}
}
