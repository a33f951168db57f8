// Package lines splits source text into lines and classifies each one as
// blank, comment, or code.
package lines

import (
	"strings"

	"complexity-analyzer/src/service/language"
)

// Kind is the classification of a single line
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	default:
		return "code"
	}
}

// Counts holds line totals for one file.
// Total always equals Code + Comment + Blank.
type Counts struct {
	Total   int
	Code    int
	Comment int
	Blank   int
}

// Split breaks text on "\r\n", "\n" or "\r" line endings.
// Empty text yields a single empty line, and a trailing line ending yields a
// trailing empty line.
func Split(text string) []string {
	result := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			result = append(result, text[start:i])
			start = i + 1
		case '\r':
			result = append(result, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(result, text[start:])
}

// LineAt returns the 1-based line number containing byte offset in text
func LineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	line := 1
	for i := 0; i < offset; i++ {
		switch text[i] {
		case '\n':
			line++
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			line++
		}
	}
	return line
}

// ClassifyLine classifies one line.
// This is a prefix check on the trimmed line, not a block comment scanner:
// the body of a multi-line comment that does not start with a delimiter
// counts as code.
func ClassifyLine(line string, p *language.Profile) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return KindBlank
	case p.IsCommentStart(trimmed):
		return KindComment
	default:
		return KindCode
	}
}

// Classify counts blank, comment, and code lines in text
func Classify(text string, p *language.Profile) Counts {
	all := Split(text)
	counts := Counts{Total: len(all)}
	for _, line := range all {
		switch ClassifyLine(line, p) {
		case KindBlank:
			counts.Blank++
		case KindComment:
			counts.Comment++
		default:
			counts.Code++
		}
	}
	return counts
}
