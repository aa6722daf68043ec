package operations

import (
	"context"

	"github.com/calckit/numerics/internal/numeric"
	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/shared/types"
)

// ReduceOps handles sequence reduction operations
type ReduceOps struct {
	*common.NumericOps
}

// GetTools returns reduction tool definitions
func (r *ReduceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.sum",
			Name:        "Sum",
			Description: "Add all numbers left to right (empty array sums to 0)",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to add", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.subtraction",
			Name:        "Subtraction",
			Description: "Subtract every later number from the first",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to reduce", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.product",
			Name:        "Product",
			Description: "Multiply all numbers left to right",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to multiply", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.square",
			Name:        "Square",
			Description: "Multiply a number by itself",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Sum adds numbers
func (r *ReduceOps) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": numeric.Sum(numbers)})
}

// Subtraction reduces numbers by subtraction
func (r *ReduceOps) Subtraction(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	result, err := numeric.Subtraction(numbers)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Product multiplies numbers
func (r *ReduceOps) Product(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	result, err := numeric.Product(numbers)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Square multiplies a number by itself. No validation: non-finite
// inputs produce non-finite results per IEEE 754.
func (r *ReduceOps) Square(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.Success(map[string]interface{}{"result": numeric.Square(x)})
}
