package numeric

import (
	"context"
	"fmt"

	numericlib "github.com/calckit/numerics/internal/numeric"
	"github.com/calckit/numerics/internal/providers/numeric/common"
	"github.com/calckit/numerics/internal/providers/numeric/operations"
	"github.com/calckit/numerics/internal/providers/numeric/sampling"
	"github.com/calckit/numerics/internal/providers/numeric/sequences"
	"github.com/calckit/numerics/internal/shared/types"
)

// Provider exposes the numeric utility operations as service tools
type Provider struct {
	reduce        *operations.ReduceOps
	combinatorics *operations.CombinatoricsOps
	compare       *operations.CompareOps
	sampling      *sampling.SamplingOps
	sequences     *sequences.SequenceOps
}

// NewProvider creates a modular numeric provider around the given Calc
func NewProvider(calc *numericlib.Calc) *Provider {
	ops := &common.NumericOps{Calc: calc}

	return &Provider{
		reduce:        &operations.ReduceOps{NumericOps: ops},
		combinatorics: &operations.CombinatoricsOps{NumericOps: ops},
		compare:       &operations.CompareOps{NumericOps: ops},
		sampling:      &sampling.SamplingOps{NumericOps: ops},
		sequences:     &sequences.SequenceOps{NumericOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.reduce.GetTools()...)
	tools = append(tools, p.combinatorics.GetTools()...)
	tools = append(tools, p.compare.GetTools()...)
	tools = append(tools, p.sampling.GetTools()...)
	tools = append(tools, p.sequences.GetTools()...)

	return types.Service{
		ID:          "numeric",
		Name:        "Numeric Utilities",
		Description: "Numeric utility operations (reductions, combinatorics, number theory, sampling, sequences, comparison)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"reduction",
			"combinatorics",
			"number_theory",
			"sampling",
			"sequences",
			"comparison",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Reductions
	case "numeric.sum":
		return p.reduce.Sum(ctx, params, appCtx)
	case "numeric.subtraction":
		return p.reduce.Subtraction(ctx, params, appCtx)
	case "numeric.product":
		return p.reduce.Product(ctx, params, appCtx)
	case "numeric.square":
		return p.reduce.Square(ctx, params, appCtx)

	// Combinatorics and number theory
	case "numeric.binomial":
		return p.combinatorics.Binomial(ctx, params, appCtx)
	case "numeric.factorial":
		return p.combinatorics.Factorial(ctx, params, appCtx)
	case "numeric.gcd":
		return p.combinatorics.GCD(ctx, params, appCtx)
	case "numeric.lcm":
		return p.combinatorics.LCM(ctx, params, appCtx)

	// Comparison
	case "numeric.nearlyEquals":
		return p.compare.NearlyEquals(ctx, params, appCtx)

	// Sampling
	case "numeric.random":
		return p.sampling.Random(ctx, params, appCtx)
	case "numeric.shuffle":
		return p.sampling.Shuffle(ctx, params, appCtx)

	// Sequences
	case "numeric.max":
		return p.sequences.Max(ctx, params, appCtx)
	case "numeric.min":
		return p.sequences.Min(ctx, params, appCtx)
	case "numeric.range":
		return p.sequences.Range(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
