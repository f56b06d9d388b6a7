// SPDX-License-Identifier: MIT

// Command squares prints the weighted sum of squares of its arguments.
//
//	squares                                               # 21
//	squares --list_of_numbers 2 4 --list_of_weights 1 3    # 52
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/squares/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps its error to a process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	err := cli.Run(context.Background(), args, stdout, stderr)
	if err == nil {
		return cli.ExitOK
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(stderr, err)

	return cli.ExitFailure
}
