// Package propfile reads, scores, and writes flat key=value scanner
// configuration files (the sonar-project.properties format).
package propfile

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Parse reads a properties file into a key/value map. Blank lines and lines
// whose first non-whitespace character is '#' are ignored; the first '=' on
// a line splits key from value, so values may themselves contain '='. A
// later line with the same key overwrites the earlier one.
//
// A file that cannot be read returns (nil, false): absence is a scoring
// input, not an error.
func Parse(path string) (map[string]string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	props := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		eq := strings.Index(trimmed, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:eq])
		value := strings.TrimSpace(trimmed[eq+1:])
		if key == "" {
			continue
		}
		props[key] = value
	}
	return props, true
}

// Render writes a property map back out in the flat file format, keys
// sorted, with an optional leading comment header.
func Render(props map[string]string, header string) string {
	var sb strings.Builder

	if header != "" {
		for _, line := range strings.Split(header, "\n") {
			sb.WriteString("# ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%s\n", k, props[k])
	}
	return sb.String()
}
