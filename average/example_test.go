// SPDX-License-Identifier: MIT
package average_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/squares/average"
)

// ExampleAverageOfSquares sums squares with the implicit weight of 1.
func ExampleAverageOfSquares() {
	sum, err := average.AverageOfSquares([]int{1, 2, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// 21
}

// ExampleWithWeights scales each square by its weight.
func ExampleWithWeights() {
	sum, err := average.AverageOfSquares([]float64{2, 4}, average.WithWeights([]float64{1, 0.5}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.1f\n", sum)
	// Output:
	// 12.0
}

// ExampleAverageOfSquares_lengthMismatch shows the precondition failure.
func ExampleAverageOfSquares_lengthMismatch() {
	_, err := average.AverageOfSquares([]float64{1, 2, 4}, average.WithWeights([]float64{1, 0.5}))
	fmt.Println(errors.Is(err, average.ErrLengthMismatch))
	fmt.Println(err)
	// Output:
	// true
	// AverageOfSquares: numbers=3 weights=2: average: weights and numbers must have same length
}
