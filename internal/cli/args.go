// SPDX-License-Identifier: MIT
// Package: cli
//
// args.go — multi-value flag normalization.

package cli

// normalizeArgs rewrites "--list_of_numbers a b c" into
// "--list_of_numbers=a --list_of_numbers=b --list_of_numbers=c" so the
// zero-or-more syntax survives pflag, which binds one value per occurrence.
// A list flag followed by no values becomes "--name=", an explicit empty
// fragment. Everything else passes through untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, ok := listFlagName(arg)
		if !ok {
			out = append(out, arg)
			if arg == "--" {
				// Terminator: copy the rest verbatim.
				out = append(out, args[i+1:]...)
				break
			}
			continue
		}

		n := 0
		for i+1 < len(args) && !isOption(args[i+1]) {
			i++
			n++
			out = append(out, "--"+name+"="+args[i])
		}
		if n == 0 {
			out = append(out, "--"+name+"=")
		}
	}

	return out
}

// listFlagName reports whether arg is a bare multi-value flag.
func listFlagName(arg string) (string, bool) {
	switch arg {
	case "--" + flagNumbers:
		return flagNumbers, true
	case "--" + flagWeights:
		return flagWeights, true
	}

	return "", false
}

// isOption reports whether arg looks like a flag rather than a value.
// Negative numbers such as "-3" or "-.5" are values.
func isOption(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	c := arg[1]

	return !(c >= '0' && c <= '9' || c == '.')
}
