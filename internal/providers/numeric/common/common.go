// Package common provides shared helpers for the numeric provider
// modules: result constructors, parameter extraction with type
// coercion, and number validation. This is the runtime validation
// boundary for heterogeneous input; the core library underneath only
// sees typed values.
package common

import (
	"fmt"
	gomath "math"

	"github.com/calckit/numerics/internal/numeric"
	"github.com/calckit/numerics/internal/shared/types"
)

// NumericOps carries the shared Calc instance across provider modules
type NumericOps struct {
	Calc *numeric.Calc
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with type coercion
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integral number from params. Fractional values are
// rejected, not truncated.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	v, ok := GetNumber(params, key)
	if !ok || v != gomath.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// GetNumbers extracts an array of numbers with type coercion. The error
// distinguishes a wrong container type from a non-numeric element; a
// single bad element fails the whole call.
func GetNumbers(params map[string]interface{}, key string) ([]float64, error) {
	val, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%s parameter required", key)
	}

	arr, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of numbers", key)
	}

	numbers := make([]float64, 0, len(arr))
	for i, v := range arr {
		switch num := v.(type) {
		case float64:
			numbers = append(numbers, num)
		case int:
			numbers = append(numbers, float64(num))
		case int64:
			numbers = append(numbers, float64(num))
		case float32:
			numbers = append(numbers, float64(num))
		default:
			return nil, fmt.Errorf("%s[%d] is not a number", key, i)
		}
	}
	return numbers, nil
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}
