// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	code := run(nil, &out, &errOut)

	require.Equal(t, 0, code)
	require.Equal(t, "21\n", out.String())
	require.Empty(t, errOut.String())
}

func TestRun_InvalidArgumentExitCode(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	code := run([]string{"--list_of_numbers", "abc"}, &out, &errOut)

	require.Equal(t, 2, code)
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), `invalid integer "abc"`)
}

func TestRun_PreconditionExitCode(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	code := run([]string{"--list_of_numbers", "1", "2", "4", "--list_of_weights", "1", "1"}, &out, &errOut)

	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "weights and numbers must have same length")
}
