package operations

import (
	"context"

	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/shared/types"
)

// CompareOps handles approximate equality comparison
type CompareOps struct {
	*common.NumericOps
}

// GetTools returns comparison tool definitions
func (cp *CompareOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.nearlyEquals",
			Name:        "Nearly Equals",
			Description: "Compare two numbers within a tolerance",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
				{Name: "tolerance", Type: "number", Description: "Overrides the configured epsilon for this call", Required: false},
			},
			Returns: "boolean",
		},
	}
}

// NearlyEquals compares a and b within the configured or per-call tolerance
func (cp *CompareOps) NearlyEquals(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	var result bool
	if tolerance, ok := common.GetNumber(params, "tolerance"); ok {
		result = cp.Calc.NearlyEquals(a, b, tolerance)
	} else {
		result = cp.Calc.NearlyEquals(a, b)
	}

	return common.Success(map[string]interface{}{"result": result})
}
