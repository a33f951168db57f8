// Package complexity estimates cyclomatic and cognitive complexity by
// counting branching keywords and operators.
package complexity

import (
	"math"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/language"
)

// base is the complexity of straight-line code
const base = 1

// Scorer computes keyword-based complexity scores
type Scorer struct {
	cap             int
	cognitiveFactor float64
}

// NewScorer creates a scorer from the analyzer configuration
func NewScorer(cfg config.AnalyzerConfig) *Scorer {
	s := &Scorer{
		cap:             cfg.ComplexityCap,
		cognitiveFactor: cfg.CognitiveFactor,
	}
	if s.cap < base {
		s.cap = base
	}
	if s.cognitiveFactor <= 0 {
		s.cognitiveFactor = 1
	}
	return s
}

// Cyclomatic returns 1 plus the number of complexity token occurrences in
// text, clamped to the configured cap.
func (s *Scorer) Cyclomatic(text string, p *language.Profile) int {
	score := base
	for _, tok := range p.Tokens {
		score += tok.Count(text)
		if score >= s.cap {
			return s.cap
		}
	}
	return score
}

// Cognitive derives cognitive complexity as a fixed multiple of cyclomatic complexity
func (s *Scorer) Cognitive(cyclomatic int) int {
	return int(math.Floor(float64(cyclomatic) * s.cognitiveFactor))
}

// Level rates a cyclomatic complexity value
func Level(cyclomatic int) model.Level {
	switch {
	case cyclomatic <= 5:
		return model.LevelLow
	case cyclomatic <= 10:
		return model.LevelModerate
	case cyclomatic <= 20:
		return model.LevelHigh
	default:
		return model.LevelVeryHigh
	}
}

// Distribution buckets function complexities for display.
// Empty buckets are omitted.
func Distribution(functions []model.FunctionRecord) []model.DistributionBucket {
	buckets := []model.DistributionBucket{
		{Name: "Low (1-5)"},
		{Name: "Moderate (6-10)"},
		{Name: "High (11-20)"},
		{Name: "Very High (20+)"},
	}
	for _, fn := range functions {
		switch Level(fn.Complexity) {
		case model.LevelLow:
			buckets[0].Count++
		case model.LevelModerate:
			buckets[1].Count++
		case model.LevelHigh:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}

	out := buckets[:0]
	for _, b := range buckets {
		if b.Count > 0 {
			out = append(out, b)
		}
	}
	return out
}
