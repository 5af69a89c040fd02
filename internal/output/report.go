package output

import (
	"fmt"
	"strings"

	"github.com/scanready/scanready/internal/analyzer"
	"github.com/scanready/scanready/internal/validator"
)

// Report renders a full validation result as human-readable text. It is a
// pure function over the result and surfaces every field.
func Report(r *validator.PreScanValidationResult) string {
	var sb strings.Builder

	sb.WriteString(Section("Pre-Scan Validation"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("Project:"), r.ProjectPath)
	fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("Scan quality:"), qualityBadge(r.ScanQuality))
	fmt.Fprintf(&sb, " %s %v\n", StyleLabel.Render("Can proceed:"), r.CanProceed)

	if len(r.Languages) > 0 {
		sb.WriteString(Section("Detected Languages"))
		sb.WriteString("\n\n")
		tbl := NewTable("Language", "Version", "Build Tool", "Modules", "Properties")
		for _, lang := range r.Languages {
			tbl.AddRow(
				lang.Language,
				orDash(lang.Version),
				orDash(lang.BuildTool),
				fmt.Sprintf("%d", len(lang.Modules)),
				fmt.Sprintf("%d", len(lang.Properties)),
			)
		}
		sb.WriteString(indent(tbl.Render()))
	}

	if len(r.DetectedProperties) > 0 {
		sb.WriteString(Section("Detected Properties"))
		sb.WriteString("\n\n")
		tbl := NewTable("Key", "Value", "Confidence", "Source")
		for _, p := range r.DetectedProperties {
			tbl.AddRow(p.Key, truncate(p.Value, 40), confidenceBadge(p.Confidence), p.Source)
		}
		sb.WriteString(indent(tbl.Render()))
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(Section("Warnings"))
		sb.WriteString("\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&sb, " %s %s %s\n", severityBadge(w.Severity), StyleBold.Render(w.Code), w.Message)
			if w.Suggestion != "" {
				fmt.Fprintf(&sb, "   %s\n", StyleMuted.Render("→ "+w.Suggestion))
			}
		}
	}

	sb.WriteString(Section("Existing Configuration"))
	sb.WriteString("\n\n")
	cfg := r.ExistingConfig
	if cfg.Exists {
		fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("File:"), cfg.Path)
		fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("Completeness:"), ScoreBar(float64(cfg.CompletenessScore), 20))
	} else {
		fmt.Fprintf(&sb, " %s %s\n", StyleLabel.Render("File:"), StyleError.Render("not found at "+cfg.Path))
	}
	writeKeyList(&sb, "Missing critical:", cfg.MissingCritical, StyleError)
	writeKeyList(&sb, "Missing recommended:", cfg.MissingRecommended, StyleWarning)

	if len(r.MissingCritical) > 0 || len(r.MissingRecommended) > 0 {
		sb.WriteString(Section("Undetected Properties"))
		sb.WriteString("\n\n")
		writeKeyList(&sb, "Critical:", r.MissingCritical, StyleWarning)
		writeKeyList(&sb, "Recommended:", r.MissingRecommended, StyleMuted)
	}

	sb.WriteString("\n")
	return sb.String()
}

func qualityBadge(q validator.ScanQuality) string {
	switch q {
	case validator.QualityFull:
		return StyleSuccess.Render(string(q))
	case validator.QualityPartial:
		return StyleWarning.Render(string(q))
	default:
		return StyleError.Render(string(q))
	}
}

func confidenceBadge(c analyzer.Confidence) string {
	switch c {
	case analyzer.ConfidenceHigh:
		return StyleSuccess.Render(string(c))
	case analyzer.ConfidenceMedium:
		return StyleWarning.Render(string(c))
	default:
		return StyleMuted.Render(string(c))
	}
}

func severityBadge(s analyzer.Severity) string {
	switch s {
	case analyzer.SeverityError:
		return StyleError.Render("[error]")
	case analyzer.SeverityWarning:
		return StyleWarning.Render("[warn] ")
	default:
		return StyleMuted.Render("[info] ")
	}
}

func writeKeyList(sb *strings.Builder, label string, keys []string, style interface{ Render(...string) string }) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(sb, " %s %s\n", StyleLabel.Render(label), style.Render(strings.Join(keys, ", ")))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func indent(s string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		sb.WriteString(" ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
