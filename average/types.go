// SPDX-License-Identifier: MIT
// Package: average
//
// types.go — numeric constraint and functional options.

package average

// Number is the set of element types accepted by the reductions.
// Arithmetic follows Go's rules for the chosen T: integer inputs produce an
// integer sum, floating-point inputs a floating-point one.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Option customizes a single AverageOfSquares call.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option[T Number] func(*config[T])

// config collects the per-call settings. weighted distinguishes "no weights
// given" from "an empty weight vector given".
type config[T Number] struct {
	weights  []T
	weighted bool
}

// WithWeights attaches a per-element weight vector. The slice is read, never
// modified. A nil slice still counts as supplied and is checked for length.
func WithWeights[T Number](weights []T) Option[T] {
	return func(c *config[T]) {
		c.weights = weights
		c.weighted = true
	}
}

// newConfig applies opts in order; later options win.
func newConfig[T Number](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
