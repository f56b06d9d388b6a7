// SPDX-License-Identifier: MIT
// Package: average
//
// errors.go — sentinel errors for the average package.
//
// Error policy:
//   • Only sentinel variables are exposed; match them with errors.Is.
//   • Returned errors carry the operation tag and offending lengths via %w.
//   • Reductions never panic on caller input.

package average

import "errors"

// ErrLengthMismatch is returned when a supplied weight vector does not have
// exactly one weight per number.
var ErrLengthMismatch = errors.New("average: weights and numbers must have same length")
