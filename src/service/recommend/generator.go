package recommend

import (
	"complexity-analyzer/src/config"
	"complexity-analyzer/src/util"
)

// Generator evaluates every rule in order and collects the messages
type Generator struct {
	rules []Rule
}

// NewGenerator creates a generator with the default rules
func NewGenerator(cfg config.RecommendationsConfig) *Generator {
	return NewGeneratorWithRules(DefaultRules(cfg))
}

// NewGeneratorWithRules creates a generator with a custom rule list
func NewGeneratorWithRules(rules []Rule) *Generator {
	return &Generator{rules: rules}
}

// Generate returns the recommendations for in. Rules are cumulative, so
// several may fire. The result is never empty.
func (g *Generator) Generate(in Input) []string {
	var out []string
	for _, r := range g.rules {
		if msg, ok := r.Evaluate(in); ok {
			util.Debug("Recommendation rule %s fired", r.Name())
			out = append(out, msg)
		}
	}

	if len(out) == 0 {
		return []string{MessageAcceptable, MessageMoreComments}
	}
	return out
}

// Rules returns the names of the configured rules in evaluation order
func (g *Generator) Rules() []string {
	names := make([]string, len(g.rules))
	for i, r := range g.rules {
		names[i] = r.Name()
	}
	return names
}
