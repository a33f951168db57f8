package bigo

import (
	"math"

	"complexity-analyzer/src/model"
)

// exponentialLimit is the largest n plotted for O(2ⁿ)
const exponentialLimit = 10

// GrowthPoint holds the value of each complexity class at one input size
type GrowthPoint struct {
	N      int                               `json:"n"`
	Values map[model.ComplexityClass]float64 `json:"values"`
}

// GrowthCurve samples every complexity class for n = 1, 1+step, ... <= maxN.
// O(2ⁿ) is only sampled while n <= 10 so it does not dwarf the others.
func GrowthCurve(maxN, step int) []GrowthPoint {
	if step < 1 {
		step = 1
	}
	var points []GrowthPoint
	for n := 1; n <= maxN; n += step {
		fn := float64(n)
		values := map[model.ComplexityClass]float64{
			model.ComplexityConstant:     1,
			model.ComplexityLogarithmic:  math.Log2(fn),
			model.ComplexityLinear:       fn,
			model.ComplexityLinearithmic: fn * math.Log2(fn),
			model.ComplexityQuadratic:    fn * fn,
			model.ComplexityCubic:        fn * fn * fn,
		}
		if n <= exponentialLimit {
			values[model.ComplexityExponential] = math.Pow(2, fn)
		}
		points = append(points, GrowthPoint{N: n, Values: values})
	}
	return points
}
