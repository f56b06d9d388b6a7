// SPDX-License-Identifier: MIT

// Package average reduces a sequence of numbers to their weighted sum of
// squares, Σ wᵢ·xᵢ², historically called the "weighted average of squares".
//
// What it offers:
//
//   - AverageOfSquares — weighted reduction with an optional weight vector
//     supplied through the WithWeights functional option.
//   - SumOfSquares     — the unweighted special case (every weight is 1).
//   - Number           — a type-set constraint over the built-in integer and
//     floating-point kinds, so []int stays int and []float64 stays float64.
//
// Weights are either omitted or supplied. Omitted weights mean "1 for every
// element"; supplied weights (even a nil or empty slice) must match the
// number sequence in length, otherwise ErrLengthMismatch is returned:
//
//	sum, err := average.AverageOfSquares([]float64{2, 4}, average.WithWeights([]float64{1, 0.5}))
//	// sum == 12
//
// Complexity: O(N) time, O(1) extra space. Inputs are never mutated.
package average
