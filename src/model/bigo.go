package model

// ComplexityClass is an asymptotic time or space complexity class
type ComplexityClass string

const (
	ComplexityConstant     ComplexityClass = "O(1)"
	ComplexityLogarithmic  ComplexityClass = "O(log n)"
	ComplexityLinear       ComplexityClass = "O(n)"
	ComplexityLinearithmic ComplexityClass = "O(n log n)"
	ComplexityQuadratic    ComplexityClass = "O(n²)"
	ComplexityCubic        ComplexityClass = "O(n³)"
	ComplexityExponential  ComplexityClass = "O(2ⁿ)"
)

// ComplexityClasses lists all classes from cheapest to most expensive
var ComplexityClasses = []ComplexityClass{
	ComplexityConstant,
	ComplexityLogarithmic,
	ComplexityLinear,
	ComplexityLinearithmic,
	ComplexityQuadratic,
	ComplexityCubic,
	ComplexityExponential,
}

// Rank returns the position of c in ComplexityClasses, or -1 if unknown
func (c ComplexityClass) Rank() int {
	for i, cc := range ComplexityClasses {
		if cc == c {
			return i
		}
	}
	return -1
}

// BigOResult is the heuristic Big-O classification of a source file
type BigOResult struct {
	TimeComplexity  ComplexityClass `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity ComplexityClass `json:"space_complexity" yaml:"space_complexity"`
	Explanation     string          `json:"explanation" yaml:"explanation"`
	Confidence      int             `json:"confidence" yaml:"confidence"`
	Signals         []Signal        `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// Signal is the number of matches of one pattern detector
type Signal struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}
