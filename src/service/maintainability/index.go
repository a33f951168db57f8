// Package maintainability computes a bounded maintainability index from
// code size and cyclomatic complexity.
package maintainability

import (
	"math"

	"complexity-analyzer/src/model"
)

const (
	baseScore        = 100.0
	complexityWeight = 2.0
	sizeWeight       = 5.0
	minScore         = 0.0
	maxScore         = 100.0
)

// Index returns round(clamp(0, 100, 100 - 2*cyclomatic - 5*ln(codeLines))).
// codeLines below 1 are treated as 1 so the logarithm stays finite.
func Index(codeLines, cyclomatic int) int {
	if codeLines < 1 {
		codeLines = 1
	}
	score := baseScore - complexityWeight*float64(cyclomatic) - sizeWeight*math.Log(float64(codeLines))
	return int(math.Round(math.Max(minScore, math.Min(maxScore, score))))
}

// Level rates a maintainability index
func Level(index int) model.Level {
	switch {
	case index >= 80:
		return model.LevelExcellent
	case index >= 60:
		return model.LevelGood
	case index >= 40:
		return model.LevelFair
	default:
		return model.LevelPoor
	}
}
