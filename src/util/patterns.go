package util

import (
	"path/filepath"
	"slices"
	"strings"

	"complexity-analyzer/src/config"
)

// ExclusionMatcher matches files against exclusion patterns
type ExclusionMatcher struct {
	filePatterns []string
	files        []string
	languages    []string
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	return &ExclusionMatcher{
		filePatterns: cfg.FilePatterns,
		files:        cfg.Files,
		languages:    cfg.Languages,
	}
}

// Matches checks if a file should be skipped.
// Paths are compared in slash form so patterns behave the same on every OS.
func (m *ExclusionMatcher) Matches(filePath, language string) bool {
	filePath = filepath.ToSlash(filePath)

	if slices.Contains(m.files, filePath) {
		return true
	}

	if language != "" && slices.Contains(m.languages, language) {
		return true
	}

	for _, pattern := range m.filePatterns {
		if MatchGlob(pattern, filePath) {
			return true
		}
		// Patterns without a directory part also match the base name
		if !strings.Contains(pattern, "/") {
			if matched, _ := filepath.Match(pattern, filepath.Base(filePath)); matched {
				return true
			}
		}
	}

	return false
}

// matchDoubleGlob handles ** patterns in globs. The part before ** must
// match a leading run of path segments and the part after it a trailing run.
func matchDoubleGlob(pattern, path string) bool {
	parts := strings.Split(pattern, "**")
	if len(parts) != 2 {
		return false
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")
	segments := strings.Split(path, "/")

	switch {
	case prefix == "" && suffix == "":
		return true
	case prefix == "":
		return matchTail(suffix, segments)
	case suffix == "":
		return matchHead(prefix, segments)
	default:
		for i := 1; i < len(segments); i++ {
			if matched, _ := filepath.Match(prefix, strings.Join(segments[:i], "/")); matched && matchTail(suffix, segments[i:]) {
				return true
			}
		}
		return false
	}
}

func matchHead(pattern string, segments []string) bool {
	for i := 1; i <= len(segments); i++ {
		if matched, _ := filepath.Match(pattern, strings.Join(segments[:i], "/")); matched {
			return true
		}
	}
	return false
}

func matchTail(pattern string, segments []string) bool {
	for i := range segments {
		if matched, _ := filepath.Match(pattern, strings.Join(segments[i:], "/")); matched {
			return true
		}
	}
	return false
}

// matchDirGlob handles the common "**/dir/**" form
func matchDirGlob(pattern, path string) (bool, bool) {
	if !strings.HasPrefix(pattern, "**/") || !strings.HasSuffix(pattern, "/**") {
		return false, false
	}
	dir := strings.TrimSuffix(strings.TrimPrefix(pattern, "**/"), "/**")
	if strings.Contains(dir, "*") {
		return false, false
	}
	return strings.HasPrefix(path, dir+"/") || strings.Contains(path, "/"+dir+"/"), true
}

// MatchGlob matches a path against a glob pattern
func MatchGlob(pattern, path string) bool {
	if matched, ok := matchDirGlob(pattern, path); ok {
		return matched
	}
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}
