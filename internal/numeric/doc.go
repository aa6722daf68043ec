// Package numeric provides the core numeric utility operations:
// sequence reductions, combinatorics, number theory, randomized
// selection and shuffling, extrema, range generation, and approximate
// equality comparison.
//
// Operations that depend on process state (the comparison tolerance and
// the random source) hang off a Calc value; everything else is a plain
// function. All sequence operations work on []float64 and return
// explicit errors for precondition violations:
//   - ErrEmptyInput: the operation requires at least one element
//   - ErrInvalidArgument: a numeric argument violates a documented
//     precondition
//
// Validation of heterogeneous input (non-numeric elements, wrong
// container types) happens at the provider boundary, not here — the
// type system guarantees element types for callers of this package.
package numeric
