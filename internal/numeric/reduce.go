package numeric

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Sum accumulates seq left to right. An empty sequence sums to 0.
func Sum(seq []float64) float64 {
	return floats.Sum(seq)
}

// Subtraction folds seq left to right starting from the first element:
// seq[0] - seq[1] - ... - seq[n-1]. Fails on empty input.
func Subtraction(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("subtraction: %w", ErrEmptyInput)
	}
	acc := seq[0]
	for _, v := range seq[1:] {
		acc -= v
	}
	return acc, nil
}

// Product multiplies seq left to right starting from the first element.
// Fails on empty input.
func Product(seq []float64) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("product: %w", ErrEmptyInput)
	}
	acc := seq[0]
	for _, v := range seq[1:] {
		acc *= v
	}
	return acc, nil
}

// Square returns x*x. Non-finite inputs flow through under IEEE 754
// semantics.
func Square(x float64) float64 {
	return x * x
}
