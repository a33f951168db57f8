// Package recommend turns report metrics into advisory messages.
package recommend

import (
	"fmt"

	"complexity-analyzer/src/config"
	"complexity-analyzer/src/model"
)

// Fallback messages emitted when no rule fires
const (
	MessageAcceptable   = "Code complexity is within acceptable ranges"
	MessageMoreComments = "Consider adding more comments for better maintainability"
)

// Input holds the metrics the rules evaluate
type Input struct {
	Cyclomatic int
	CodeLines  int
	Functions  []model.FunctionRecord
}

// Rule produces at most one recommendation
type Rule interface {
	// Name returns the rule name
	Name() string

	// Evaluate returns the recommendation and whether the rule fired
	Evaluate(in Input) (string, bool)
}

type ruleFunc struct {
	name string
	eval func(Input) (string, bool)
}

func (r ruleFunc) Name() string                     { return r.name }
func (r ruleFunc) Evaluate(in Input) (string, bool) { return r.eval(in) }

// DefaultRules returns the threshold rules in evaluation order
func DefaultRules(cfg config.RecommendationsConfig) []Rule {
	return []Rule{
		ruleFunc{"decompose_complex_code", func(in Input) (string, bool) {
			return "Consider breaking down complex functions into smaller, more manageable pieces",
				in.Cyclomatic > cfg.DecomposeComplexity
		}},
		ruleFunc{"refactor_conditionals", func(in Input) (string, bool) {
			return "High cyclomatic complexity detected - refactor conditional logic",
				in.Cyclomatic > cfg.RefactorComplexity
		}},
		ruleFunc{"split_large_file", func(in Input) (string, bool) {
			return "Large file detected - consider splitting into multiple modules",
				in.CodeLines > cfg.MaxFileCodeLines
		}},
		ruleFunc{"complex_functions", func(in Input) (string, bool) {
			count := 0
			for _, fn := range in.Functions {
				if fn.Complexity > cfg.FunctionComplexity {
					count++
				}
			}
			return fmt.Sprintf("%d function(s) have high complexity - focus refactoring efforts here", count),
				count > 0
		}},
		ruleFunc{"long_functions", func(in Input) (string, bool) {
			for _, fn := range in.Functions {
				if fn.Lines > cfg.MaxFunctionLines {
					return "Some functions are quite long - consider breaking them into smaller functions", true
				}
			}
			return "", false
		}},
	}
}
