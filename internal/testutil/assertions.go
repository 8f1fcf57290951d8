package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	summaryHeader = "=== Trip Summary ==="
	errorPrefix   = "\nAn error occurred: "
	retryHint     = "Please try again with valid inputs.\n"
)

// AssertSummaryPrinted checks that the session reached the summary without
// reporting an error.
func AssertSummaryPrinted(t *testing.T, result *HarnessResult) {
	t.Helper()
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, summaryHeader, "expected the trip summary to be printed")
	require.NotContains(t, result.Output, errorPrefix, "did not expect an error report")
}

// AssertErrorReported checks that exactly one error report was printed, that
// it mentions want, and that no summary followed.
func AssertErrorReported(t *testing.T, result *HarnessResult, want string) {
	t.Helper()
	require.NoError(t, result.Err, "a reported session error must not fail the run")
	require.Equal(t, 1, strings.Count(result.Output, errorPrefix), "expected exactly one error report")
	require.Contains(t, result.Output, want)
	require.True(t, strings.HasSuffix(result.Output, retryHint), "expected the retry hint to end the output")
	require.NotContains(t, result.Output, summaryHeader, "no summary may follow an error")
}
