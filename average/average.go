// SPDX-License-Identifier: MIT
// Package: average
//
// average.go — weighted and unweighted sums of squares.

package average

import "fmt"

// Operation tags used when wrapping sentinels.
const (
	opAverageOfSquares = "AverageOfSquares"
)

// AverageOfSquares returns Σ wᵢ·xᵢ² over numbers.
//
// Without WithWeights every element is weighted 1 and the result equals
// SumOfSquares(numbers). With WithWeights the weight vector must have the
// same length as numbers.
//
// Behavior highlights:
//   - Empty numbers with omitted or empty weights yields 0.
//   - Terms are accumulated left to right as weight*x*x.
//
// Errors:
//   - ErrLengthMismatch (wrapped with both lengths) when weights are
//     supplied and len(weights) != len(numbers).
//
// Complexity: O(N) time, O(1) space.
func AverageOfSquares[T Number](numbers []T, opts ...Option[T]) (T, error) {
	cfg := newConfig(opts)
	if !cfg.weighted {
		return SumOfSquares(numbers), nil
	}

	if len(cfg.weights) != len(numbers) {
		return 0, fmt.Errorf("%s: numbers=%d weights=%d: %w",
			opAverageOfSquares, len(numbers), len(cfg.weights), ErrLengthMismatch)
	}

	var sum T
	for i, x := range numbers {
		sum += cfg.weights[i] * x * x
	}

	return sum, nil
}

// SumOfSquares returns Σ xᵢ². An empty or nil slice yields 0.
// Complexity: O(N) time, O(1) space.
func SumOfSquares[T Number](numbers []T) T {
	var sum T
	for _, x := range numbers {
		sum += x * x
	}

	return sum
}
