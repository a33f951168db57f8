// Package language holds the per-language scanning tables: comment
// delimiters, branching tokens, and declaration templates.
package language

import (
	"regexp"
	"strings"
	"unicode"
)

// BlockComment is a block comment delimiter pair
type BlockComment struct {
	Start string
	End   string
}

// Token is a branching keyword or operator counted towards complexity.
// Alphabetic tokens match on word boundaries; symbolic tokens match literally.
type Token struct {
	Text string
	word *regexp.Regexp
}

func newToken(text string) Token {
	t := Token{Text: text}
	if isWord(text) {
		t.word = regexp.MustCompile(`\b` + regexp.QuoteMeta(text) + `\b`)
	}
	return t
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}

// Count returns the number of non-overlapping occurrences of the token in text
func (t Token) Count(text string) int {
	if t.word != nil {
		return len(t.word.FindAllStringIndex(text, -1))
	}
	return strings.Count(text, t.Text)
}

// Profile describes how source text of one language is scanned.
// Profiles are shared by every analysis and must be treated as read-only.
type Profile struct {
	Tag              string
	Extensions       []string
	LineComments     []string
	BlockComments    []BlockComment
	Tokens           []Token
	FunctionPatterns []*regexp.Regexp
	ClassPatterns    []*regexp.Regexp
}

// IsCommentStart reports whether a trimmed line opens a comment
func (p *Profile) IsCommentStart(trimmed string) bool {
	for _, prefix := range p.LineComments {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	for _, bc := range p.BlockComments {
		if strings.HasPrefix(trimmed, bc.Start) {
			return true
		}
	}
	return false
}

// TokenTexts returns the literal text of each complexity token in order
func (p *Profile) TokenTexts() []string {
	texts := make([]string, len(p.Tokens))
	for i, t := range p.Tokens {
		texts[i] = t.Text
	}
	return texts
}

// definition is the uncompiled form of a Profile
type definition struct {
	extensions    []string
	lineComments  []string
	blockComments []BlockComment
	tokens        []string
	functions     []string
	classes       []string
}

func (d definition) compile(tag string) *Profile {
	p := &Profile{
		Tag:           tag,
		Extensions:    d.extensions,
		LineComments:  d.lineComments,
		BlockComments: d.blockComments,
	}
	for _, t := range d.tokens {
		p.Tokens = append(p.Tokens, newToken(t))
	}
	for _, f := range d.functions {
		p.FunctionPatterns = append(p.FunctionPatterns, regexp.MustCompile(f))
	}
	for _, c := range d.classes {
		p.ClassPatterns = append(p.ClassPatterns, regexp.MustCompile(c))
	}
	return p
}
