// Package squares computes weighted sums of squares ("weighted averages of
// squares") over integer lists taken from loosely formatted text.
//
// 🚀 What is in here?
//
//	A small, dependency-light toolkit plus a command:
//		• average/ — AverageOfSquares (Σ w·x²) with optional weights, generic over Go number kinds
//		• convert/ — whitespace tokenizer + strict base-10 integer conversion
//		• cmd/squares — command line wrapper (cobra), YAML defaults, slog diagnostics
//
// Quick example:
//
//	nums, _ := convert.Numbers([]string{"1", "2 4"})    // [1 2 4]
//	sum, _ := average.AverageOfSquares(nums)            // 21
//
//	$ squares --list_of_numbers 2 4 --list_of_weights 1 3
//	52
//
// Errors are sentinels matched with errors.Is: average.ErrLengthMismatch for
// a weight vector of the wrong length, convert.ErrInvalidNumber for a token
// that is not an integer.
package squares
