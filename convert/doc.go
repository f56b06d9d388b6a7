// SPDX-License-Identifier: MIT

// Package convert turns loosely formatted text fragments into integers.
//
// Every fragment may hold several whitespace-separated tokens, so both
//
//	convert.Numbers([]string{"4 8"})
//	convert.Numbers([]string{"4", "8"})
//
// yield [4 8]. Tokens are taken in fragment order, then left to right inside
// a fragment. Each token must be a strict base-10 integer literal; the first
// offending token aborts the whole conversion with a *ParseError.
package convert
