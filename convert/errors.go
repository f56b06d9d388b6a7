// SPDX-License-Identifier: MIT
// Package: convert
//
// errors.go — sentinel and structured errors for the convert package.

package convert

import (
	"errors"
	"fmt"
)

// ErrInvalidNumber marks a token that is not a base-10 integer literal.
// Every *ParseError matches it via errors.Is.
var ErrInvalidNumber = errors.New("convert: invalid integer")

// ParseError reports the first token that failed integer parsing.
type ParseError struct {
	Token string // offending token, already trimmed
	Index int    // position in the flat token stream
	Err   error  // underlying strconv error
}

// Error renders the token, its position and the parser's reason.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q at token %d: %v", ErrInvalidNumber, e.Token, e.Index, e.Err)
}

// Unwrap exposes both ErrInvalidNumber and the *strconv.NumError.
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidNumber, e.Err}
}
