package sampling

import (
	"context"

	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/shared/types"
)

// SamplingOps handles randomized selection and shuffling
type SamplingOps struct {
	*common.NumericOps
}

// GetTools returns sampling tool definitions
func (s *SamplingOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "numeric.random",
			Name:        "Random Selection",
			Description: "Select elements uniformly at random, with or without replacement",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Population to draw from", Required: true},
				{Name: "quantity", Type: "number", Description: "Number of elements to draw", Required: true},
				{Name: "allow_duplicates", Type: "boolean", Description: "Draw with replacement (default false)", Required: false},
			},
			Returns: "array",
		},
		{
			ID:          "numeric.shuffle",
			Name:        "Shuffle",
			Description: "Produce a uniformly random permutation (Fisher-Yates)",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to shuffle", Required: true},
			},
			Returns: "array",
		},
	}
}

// Random selects quantity elements from the population
func (s *SamplingOps) Random(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	quantity, ok := common.GetInt(params, "quantity")
	if !ok {
		return common.Failure("quantity must be an integer")
	}

	allowDuplicates, _ := common.GetBool(params, "allow_duplicates")

	result, err := s.Calc.Sample(numbers, quantity, allowDuplicates)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Shuffle permutes the input uniformly. The provider boundary already
// copied the input out of the request, so shuffling in place is safe.
func (s *SamplingOps) Shuffle(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, err := common.GetNumbers(params, "numbers")
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": s.Calc.Shuffle(numbers)})
}
