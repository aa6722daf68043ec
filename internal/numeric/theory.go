package numeric

import (
	"fmt"
	gomath "math"
)

// GCD computes the greatest common divisor of the truncated absolute
// values of a and b with the Euclidean algorithm. GCD(0, x) is |x| and
// GCD(0, 0) is 0.
func GCD(a, b float64) float64 {
	x := int(gomath.Abs(a))
	y := int(gomath.Abs(b))
	for y != 0 {
		x, y = y, x%y
	}
	return float64(x)
}

// LCM computes the least common multiple as |a*b| / GCD(a, b). LCM(0, x)
// is 0; both arguments zero is rejected since the quotient is undefined.
func LCM(a, b float64) (float64, error) {
	g := GCD(a, b)
	if g == 0 {
		return 0, fmt.Errorf("lcm undefined for two zero arguments: %w", ErrInvalidArgument)
	}
	return gomath.Abs(a*b) / g, nil
}
