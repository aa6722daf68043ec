package operations

import (
	"context"

	"github.com/calckit/numerics/internal/numeric"
	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/shared/types"
)

// CombinatoricsOps handles combinatorics and number theory operations
type CombinatoricsOps struct {
	*common.NumericOps
}

// GetTools returns combinatorics tool definitions
func (co *CombinatoricsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.binomial",
			Name:        "Binomial Coefficient",
			Description: "Count ways to choose k items from n (C(n,k))",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Population size", Required: true},
				{Name: "k", Type: "number", Description: "Selection size", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.factorial",
			Name:        "Factorial",
			Description: "Calculate factorial (n!)",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.gcd",
			Name:        "Greatest Common Divisor",
			Description: "Calculate GCD of two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "numeric.lcm",
			Name:        "Least Common Multiple",
			Description: "Calculate LCM of two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Binomial calculates the binomial coefficient
func (co *CombinatoricsOps) Binomial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}
	k, ok := common.GetInt(params, "k")
	if !ok {
		return common.Failure("k must be an integer")
	}

	return common.Success(map[string]interface{}{"result": numeric.Binomial(n, k)})
}

// Factorial calculates factorial
func (co *CombinatoricsOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n must be an integer")
	}

	result, err := numeric.Factorial(n)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// GCD calculates the greatest common divisor
func (co *CombinatoricsOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Success(map[string]interface{}{"result": numeric.GCD(a, b)})
}

// LCM calculates the least common multiple
func (co *CombinatoricsOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	result, err := numeric.LCM(a, b)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}
