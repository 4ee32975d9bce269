package commands

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermArgumentRequired(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	// a bare invocation is the documented help case
	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	// asking for a fetch without saying which term is an error
	rootCmd.SetArgs([]string{"--format", "csv"})
	err := rootCmd.ExecuteContext(context.Background())
	require.ErrorContains(t, err, "term code is required")
}
