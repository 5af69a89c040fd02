package analyzer

import (
	"os"
	"path/filepath"
)

// fileExists reports whether the given relative path exists under root and
// is a regular file.
func fileExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, rel))
	return err == nil && info.Mode().IsRegular()
}

// dirExists reports whether the given relative path exists under root and
// is a directory.
func dirExists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, rel))
	return err == nil && info.IsDir()
}

// readText reads a file under root and returns its content as a string.
// A missing or unreadable file returns ("", false) rather than an error.
func readText(root, rel string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// anyFileExists reports whether at least one of the relative paths exists
// as a regular file under root.
func anyFileExists(root string, rels ...string) bool {
	for _, rel := range rels {
		if fileExists(root, rel) {
			return true
		}
	}
	return false
}

// firstExistingDir returns the first candidate directory that exists under
// root, or ("", false) when none do. Candidates are checked in order, so the
// caller's list encodes how canonical each layout is.
func firstExistingDir(root string, candidates ...string) (string, bool) {
	for _, c := range candidates {
		if dirExists(root, c) {
			return c, true
		}
	}
	return "", false
}
