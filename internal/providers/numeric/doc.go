// Package numeric exposes the numeric utility library as a service
// provider.
//
// This package is organized into specialized modules:
//   - operations: sequence reductions (sum, subtraction, product,
//     square), combinatorics and number theory (binomial, factorial,
//     gcd, lcm), and approximate equality comparison
//   - sampling: uniform random selection with and without replacement,
//     Fisher-Yates shuffling
//   - sequences: extrema (max, min) and arithmetic range generation
//
// The provider is a thin validation boundary: parameters arrive as
// heterogeneous maps, are coerced and checked by the common helpers,
// and are handed to the typed core in internal/numeric. Results use a
// consistent {"result": ...} JSON shape.
package numeric
