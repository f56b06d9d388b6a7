// SPDX-License-Identifier: MIT
// Package: convert
//
// convert.go — fragment tokenization and integer conversion.

package convert

import (
	"strconv"
	"strings"
)

// Tokens splits every fragment on runs of Unicode whitespace and returns the
// pieces in order. Empty and whitespace-only fragments contribute nothing.
// The result is never nil.
// Complexity: O(total bytes) time and space.
func Tokens(fragments []string) []string {
	tokens := make([]string, 0, len(fragments))
	for _, f := range fragments {
		// strings.Fields already drops leading/trailing blanks of each piece.
		tokens = append(tokens, strings.Fields(f)...)
	}

	return tokens
}

// Numbers tokenizes fragments and parses every token with strconv.Atoi.
//
// Behavior highlights:
//   - An optional leading '+' or '-' is accepted; prefixes, underscores and
//     decimal points are not.
//   - No partial result: on the first bad token Numbers returns nil.
//   - nil or empty input yields an empty, non-nil slice.
//
// Errors:
//   - *ParseError (matches ErrInvalidNumber) for the first invalid token.
//
// Complexity: O(total bytes) time, O(tokens) space.
func Numbers(fragments []string) ([]int, error) {
	tokens := Tokens(fragments)
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Token: tok, Index: i, Err: err}
		}
		out[i] = n
	}

	return out, nil
}
