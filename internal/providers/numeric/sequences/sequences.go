package sequences

import (
	"context"

	"github.com/calckit/numerics/internal/numeric"
	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/shared/types"
)

// SequenceOps handles extrema and range generation
type SequenceOps struct {
	*common.NumericOps
}

// GetTools returns sequence tool definitions
func (sq *SequenceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.max",
			Name:        "Maximum",
			Description: "Find maximum value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.min",
			Name:        "Minimum",
			Description: "Find minimum value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.range",
			Name:        "Range",
			Description: "Generate an arithmetic sequence from start toward stop",
			Parameters: []types.Parameter{
				{Name: "stop", Type: "number", Description: "End bound", Required: true},
				{Name: "start", Type: "number", Description: "Start value (default 0)", Required: false},
				{Name: "step", Type: "number", Description: "Increment (default 1; sign follows direction)", Required: false},
			},
			Returns: "array",
		},
	}
}

// Max finds the maximum value
func (sq *SequenceOps) Max(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	result, err := numeric.Max(numbers)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Min finds the minimum value
func (sq *SequenceOps) Min(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	result, err := numeric.Min(numbers)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Range generates an arithmetic sequence. With no start the sequence
// begins at 0.
func (sq *SequenceOps) Range(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	stop, ok := common.GetNumber(params, "stop")
	if !ok {
		return common.Failure("stop parameter required")
	}

	start, _ := common.GetNumber(params, "start")
	step, _ := common.GetNumber(params, "step")

	return common.Success(map[string]interface{}{"result": numeric.Range(start, stop, step)})
}
