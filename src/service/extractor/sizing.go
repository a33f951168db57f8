package extractor

import (
	"math/rand/v2"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"complexity-analyzer/src/config"
)

// Class metric ranges, inclusive
const (
	classComplexityMin = 5
	classComplexityMax = 19
	classMethodsMin    = 2
	classMethodsMax    = 9
	classLinesMin      = 20
	classLinesMax      = 119
)

// Sizer derives pseudo-random but reproducible sizes for declarations.
// Each value is drawn from a generator seeded with a hash of the
// declaration, so identical input always yields identical sizes.
type Sizer struct {
	bodyMin int
	bodyMax int
}

// NewSizer creates a sizer from the analyzer configuration
func NewSizer(cfg config.AnalyzerConfig) *Sizer {
	s := &Sizer{bodyMin: cfg.BodyMinLines, bodyMax: cfg.BodyMaxLines}
	if s.bodyMin < 1 {
		s.bodyMin = 1
	}
	if s.bodyMax < s.bodyMin {
		s.bodyMax = s.bodyMin
	}
	return s
}

func (s *Sizer) source(kind string, d Detection) *rand.Rand {
	h := xxhash.New()
	_, _ = h.WriteString(kind)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(d.Name)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.Itoa(d.Offset))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(d.Match)
	sum := h.Sum64()
	return rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15))
}

// BodyLines returns the number of lines to take as a function body
func (s *Sizer) BodyLines(d Detection) int {
	return between(s.source("function", d), s.bodyMin, s.bodyMax)
}

// ClassMetrics returns estimated complexity, method count and line count for a class
func (s *Sizer) ClassMetrics(d Detection) (complexity, methods, lineCount int) {
	r := s.source("class", d)
	complexity = between(r, classComplexityMin, classComplexityMax)
	methods = between(r, classMethodsMin, classMethodsMax)
	lineCount = between(r, classLinesMin, classLinesMax)
	return complexity, methods, lineCount
}

func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
