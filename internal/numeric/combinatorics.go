package numeric

import "fmt"

// Binomial computes the binomial coefficient C(n, k) via the recursive
// identity C(n, k) = C(n-1, k-1) + C(n-1, k), memoized per call so the
// cost is O(n*k) instead of exponential. The memo is a two-level sparse
// map from n to k and never outlives the call.
//
// Negative n or k yields 0.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 {
		return 0
	}
	memo := make(map[int]map[int]float64)
	return binomial(n, k, memo)
}

func binomial(n, k int, memo map[int]map[int]float64) float64 {
	if k == 0 {
		return 1
	}
	if n == 0 {
		return 0
	}
	if v, ok := memo[n][k]; ok {
		return v
	}
	v := binomial(n-1, k-1, memo) + binomial(n-1, k, memo)
	row, ok := memo[n]
	if !ok {
		row = make(map[int]float64)
		memo[n] = row
	}
	row[k] = v
	return v
}

// Factorial computes n! iteratively. Factorial(0) and Factorial(1) are
// both 1. There is no overflow checking: large n loses precision or
// overflows to +Inf per float64 semantics. Negative n is rejected.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative %d: %w", n, ErrInvalidArgument)
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}
