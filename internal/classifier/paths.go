package classifier

import (
	"regexp"
	"sort"
	"strings"
)

var (
	quotedPathPattern = regexp.MustCompile(`["']((?:[A-Za-z]:\\|/)[^"']*)["']`)
	barePathPattern   = regexp.MustCompile(`(?:^|[\s=(\[])((?:[A-Za-z]:\\|/)[^\s"',;)\]]+)`)
)

// ExtractPaths finds quoted and bare absolute paths (POSIX and Windows
// style) in the text, deduplicated, preserving order of first occurrence.
func ExtractPaths(text string) []string {
	type hit struct {
		pos  int
		path string
	}
	var hits []hit

	for _, m := range quotedPathPattern.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{pos: m[2], path: text[m[2]:m[3]]})
	}
	for _, m := range barePathPattern.FindAllStringSubmatchIndex(text, -1) {
		hits = append(hits, hit{pos: m[2], path: text[m[2]:m[3]]})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	var out []string
	seen := make(map[string]bool)
	for _, h := range hits {
		p := strings.TrimRight(h.path, ".,:")
		if p == "" || p == "/" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
