// Package bigo guesses the time and space complexity class of source text
// from loop, recursion, search, and collection idioms.
package bigo

import (
	"regexp"
	"strings"

	"complexity-analyzer/src/model"
	"complexity-analyzer/src/service/detector"
)

// Default is the classification when no pattern matches
var Default = model.BigOResult{
	TimeComplexity:  model.ComplexityConstant,
	SpaceComplexity: model.ComplexityConstant,
	Explanation:     "Constant time and space complexity",
	Confidence:      85,
}

// collectionSpaceNote is appended when the space class is bumped for allocations
const collectionSpaceNote = ". Additional space used for collections"

// recursionThreshold is the number of self-call matches, declaration
// included, above which code is treated as recursive
const recursionThreshold = 2

var additiveReturn = regexp.MustCompile(`(?i)return.*\+.*\(`)

var collectionNames = []string{"List", "Array", "Dictionary", "HashSet"}

// branch is one classification outcome, tried in priority order
type branch struct {
	name    string
	applies func(scan detector.Scan, text string) bool
	result  model.BigOResult
}

func matched(name string) func(detector.Scan, string) bool {
	return func(scan detector.Scan, _ string) bool { return scan.Has(name) }
}

func recursive(scan detector.Scan) bool {
	return scan.Count(detector.Recursion) > recursionThreshold
}

// exponentialShape reports whether recursive code looks like it branches
// into several self-calls per step
func exponentialShape(text string) bool {
	return strings.Contains(text, "fibonacci") || additiveReturn.MatchString(text)
}

// branches are evaluated top to bottom; the first that applies wins
var branches = []branch{
	{
		name:    "triple_nested_loop",
		applies: matched(detector.TripleNestedLoop),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityCubic,
			SpaceComplexity: model.ComplexityConstant,
			Explanation:     "Triple nested loops detected, resulting in cubic time complexity",
			Confidence:      90,
		},
	},
	{
		name:    "nested_loop",
		applies: matched(detector.NestedLoop),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityQuadratic,
			SpaceComplexity: model.ComplexityConstant,
			Explanation:     "Nested loops detected, resulting in quadratic time complexity",
			Confidence:      88,
		},
	},
	{
		name:    "sorting",
		applies: matched(detector.Sorting),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityLinearithmic,
			SpaceComplexity: model.ComplexityLogarithmic,
			Explanation:     "Sorting operations detected, typically O(n log n) for efficient algorithms",
			Confidence:      82,
		},
	},
	{
		name: "exponential_recursion",
		applies: func(scan detector.Scan, text string) bool {
			return recursive(scan) && exponentialShape(text)
		},
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityExponential,
			SpaceComplexity: model.ComplexityLinear,
			Explanation:     "Exponential recursion detected (like naive Fibonacci), very inefficient",
			Confidence:      75,
		},
	},
	{
		name: "linear_recursion",
		applies: func(scan detector.Scan, _ string) bool {
			return recursive(scan)
		},
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityLinear,
			SpaceComplexity: model.ComplexityLinear,
			Explanation:     "Recursive algorithm detected with linear time and space complexity",
			Confidence:      70,
		},
	},
	{
		name:    "binary_search",
		applies: matched(detector.BinarySearch),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityLogarithmic,
			SpaceComplexity: model.ComplexityConstant,
			Explanation:     "Binary search pattern detected, logarithmic time complexity",
			Confidence:      85,
		},
	},
	{
		name:    "chained_operation",
		applies: matched(detector.ChainedOperation),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityLinear,
			SpaceComplexity: model.ComplexityLinear,
			Explanation:     "LINQ-style chained operations detected, typically linear time complexity",
			Confidence:      75,
		},
	},
	{
		name:    "single_loop",
		applies: matched(detector.SingleLoop),
		result: model.BigOResult{
			TimeComplexity:  model.ComplexityLinear,
			SpaceComplexity: model.ComplexityConstant,
			Explanation:     "Single loop detected, linear time complexity",
			Confidence:      80,
		},
	},
}

// Classifier maps pattern matches to a complexity class
type Classifier struct{}

// NewClassifier creates a Big-O classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scans the whole text and returns exactly one classification.
// functionNames are the detected function names used to spot self-calls;
// when empty, recursion is not considered.
func (c *Classifier) Classify(text string, functionNames []string) model.BigOResult {
	detectors := append(detector.Standard(), detector.NewRecursionDetector(functionNames))
	scan := detector.NewRunner(detectors...).Run(text)

	result := Default
	for _, b := range branches {
		if b.applies(scan, text) {
			result = b.result
			break
		}
	}

	result = adjustSpace(result, text)
	result.Signals = scan.Signals
	return result
}

// adjustSpace bumps constant space to linear when the text allocates
// collections. It runs after classification and only touches O(1) space.
func adjustSpace(result model.BigOResult, text string) model.BigOResult {
	if result.SpaceComplexity != model.ComplexityConstant || !strings.Contains(text, "new ") {
		return result
	}
	for _, name := range collectionNames {
		if strings.Contains(text, name) {
			result.SpaceComplexity = model.ComplexityLinear
			result.Explanation += collectionSpaceNote
			return result
		}
	}
	return result
}

// Level rates a complexity class
func Level(class model.ComplexityClass) model.Level {
	switch class {
	case model.ComplexityConstant:
		return model.LevelExcellent
	case model.ComplexityLogarithmic:
		return model.LevelVeryGood
	case model.ComplexityLinear:
		return model.LevelGood
	case model.ComplexityLinearithmic:
		return model.LevelFair
	case model.ComplexityQuadratic:
		return model.LevelPoor
	case model.ComplexityCubic:
		return model.LevelVeryPoor
	case model.ComplexityExponential:
		return model.LevelTerrible
	default:
		return model.LevelUnknown
	}
}
