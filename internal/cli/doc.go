// SPDX-License-Identifier: MIT

// Package cli implements the squares command line: it resolves the number
// and weight fragments (defaults, YAML file, flags), converts them with
// package convert, reduces them with package average and prints the result.
//
// Run is the testable entry point; cmd/squares only maps its error to an
// exit code. Parse and precondition failures surface as *ExitError with
// ExitInvalidArgument.
package cli
