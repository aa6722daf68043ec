package numeric

import gomath "math"

// NearlyEquals reports whether a and b differ by at most the comparison
// tolerance. A non-zero tolerance argument overrides the configured
// epsilon for this call only; the Calc is never mutated.
func (c *Calc) NearlyEquals(a, b float64, tolerance ...float64) bool {
	eps := c.epsilon
	if len(tolerance) > 0 && tolerance[0] != 0 {
		eps = tolerance[0]
	}
	return gomath.Abs(a-b) <= eps
}
