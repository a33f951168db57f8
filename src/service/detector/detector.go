// Package detector counts textual code patterns that hint at algorithmic cost.
package detector

import (
	"regexp"
	"strings"
)

// Detector names
const (
	TripleNestedLoop = "triple_nested_loop"
	NestedLoop       = "nested_loop"
	SingleLoop       = "single_loop"
	Recursion        = "recursion"
	BinarySearch     = "binary_search"
	HashAccess       = "hash_access"
	Sorting          = "sorting"
	ChainedOperation = "chained_operation"
)

// Detector is the interface for all pattern detectors
type Detector interface {
	// Name returns the detector name
	Name() string

	// Count returns the number of matches in text
	Count(text string) int
}

// PatternDetector counts non-overlapping matches of a regular expression
type PatternDetector struct {
	name string
	re   *regexp.Regexp
}

// NewPatternDetector creates a detector from a pattern; it panics if the
// pattern does not compile.
func NewPatternDetector(name, pattern string) *PatternDetector {
	return &PatternDetector{name: name, re: regexp.MustCompile(pattern)}
}

// Name returns the detector name
func (d *PatternDetector) Name() string {
	return d.name
}

// Count returns the number of matches in text
func (d *PatternDetector) Count(text string) int {
	return len(d.re.FindAllStringIndex(text, -1))
}

// All patterns match case-insensitively. [^}]* keeps a nested match within
// one brace block.
var standard = []Detector{
	NewPatternDetector(TripleNestedLoop,
		`(?i)for\s*\([^}]*for\s*\([^}]*for\s*\(|foreach\s*\([^}]*foreach\s*\([^}]*foreach\s*\(`),
	NewPatternDetector(NestedLoop,
		`(?i)for\s*\([^}]*for\s*\(|while\s*\([^}]*while\s*\(|for\s*\([^}]*while\s*\(|foreach\s*\([^}]*foreach\s*\(`),
	NewPatternDetector(SingleLoop, `(?i)(?:for|while|foreach)\s*\(`),
	NewPatternDetector(BinarySearch, `(?i)(?:mid|middle)\s*=.*/\s*2|low.*high.*mid`),
	NewPatternDetector(HashAccess, `(?i)\[.*\]|\.ContainsKey\(|\.TryGetValue\(|\.Add\(|Dictionary|HashSet`),
	NewPatternDetector(Sorting, `(?i)\.Sort\(|\.OrderBy\(|\.OrderByDescending\(|Array\.Sort|List\.Sort`),
	NewPatternDetector(ChainedOperation, `(?i)\.Where\(|\.Select\(|\.GroupBy\(|\.Join\(`),
}

// Standard returns the text-only detectors, which need no knowledge of
// the analyzed file
func Standard() []Detector {
	out := make([]Detector, len(standard))
	copy(out, standard)
	return out
}

// NewRecursionDetector matches calls to any of the given function names.
// It returns nil when names is empty.
func NewRecursionDetector(names []string) Detector {
	quoted := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	if len(quoted) == 0 {
		return nil
	}
	return NewPatternDetector(Recursion, `(?i)\b(?:`+strings.Join(quoted, "|")+`)\s*\(`)
}
