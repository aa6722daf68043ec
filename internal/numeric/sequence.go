package numeric

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/floats"
)

// Max returns the maximum element of seq. Fails on empty input.
func Max(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("max: %w", ErrEmptyInput)
	}
	return floats.Max(seq), nil
}

// Min returns the minimum element of seq. Fails on empty input.
func Min(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("min: %w", ErrEmptyInput)
	}
	return floats.Min(seq), nil
}

// Range generates a materialized arithmetic sequence from start toward
// stop. A zero step defaults to 1; the step sign is forced toward stop,
// so Range(5, 1, 1) counts down. The first element is always emitted,
// which makes Range(0, 0, 1) = [0]; subsequent elements follow while
// they stay strictly short of stop. Values are computed as
// start + i*step to avoid accumulation drift.
func Range(start, stop, step float64) []float64 {
	if step == 0 {
		step = 1
	}
	step = gomath.Abs(step)
	if stop < start {
		step = -step
	}

	n := int(gomath.Ceil((stop - start) / step))
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
