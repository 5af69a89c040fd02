package analyzer

import "regexp"

// versionPattern is one entry in an analyzer's version-extraction table.
// Patterns are best-effort regexes over manifest text, never full parsers.
// Tables are evaluated top to bottom; the first match wins, so order encodes
// precedence.
type versionPattern struct {
	// purpose names the manifest construct the pattern targets, for tests
	// and provenance strings.
	purpose string

	re *regexp.Regexp
}

// extractVersion runs a pattern table against manifest content and returns
// the first captured version along with the purpose of the matching pattern.
func extractVersion(content string, table []versionPattern) (version, purpose string) {
	for _, p := range table {
		if m := p.re.FindStringSubmatch(content); len(m) > 1 && m[1] != "" {
			return m[1], p.purpose
		}
	}
	return "", ""
}

// extractAll returns every first-group capture of re in content, in order.
func extractAll(content string, re *regexp.Regexp) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		if len(m) > 1 && m[1] != "" {
			out = append(out, m[1])
		}
	}
	return out
}
