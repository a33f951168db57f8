// Package extractor locates function and class declarations in source text
// and turns them into report records.
package extractor

import (
	"regexp"

	"complexity-analyzer/src/service/language"
	"complexity-analyzer/src/service/lines"
)

// Detection is a declaration found in source text
type Detection struct {
	Name   string
	Offset int    // byte offset of the match start
	Line   int    // 1-based line of the match start
	Match  string // matched declaration text
}

// Extractor finds declarations in source text. The regex implementation
// is a heuristic; a parser-backed implementation can replace it without
// changing the report shape.
type Extractor interface {
	Functions(text string, p *language.Profile) []Detection
	Classes(text string, p *language.Profile) []Detection
}

// RegexExtractor applies a profile's declaration templates to the full text
type RegexExtractor struct{}

// NewRegexExtractor creates a template-driven extractor
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Functions runs every function template in order over the whole text
func (e *RegexExtractor) Functions(text string, p *language.Profile) []Detection {
	return e.scan(text, p.FunctionPatterns)
}

// Classes runs every class template in order over the whole text
func (e *RegexExtractor) Classes(text string, p *language.Profile) []Detection {
	return e.scan(text, p.ClassPatterns)
}

func (e *RegexExtractor) scan(text string, patterns []*regexp.Regexp) []Detection {
	var found []Detection
	for _, re := range patterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, Detection{
				Name:   captureName(text, loc),
				Offset: loc[0],
				Line:   lines.LineAt(text, loc[0]),
				Match:  text[loc[0]:loc[1]],
			})
		}
	}
	return found
}

// captureName returns the first non-empty capture group, or "anonymous"
func captureName(text string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 && loc[i+1] > loc[i] {
			return text[loc[i]:loc[i+1]]
		}
	}
	return "anonymous"
}
