package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tripplanner/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_BrokenSettingsFile(t *testing.T) {
	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug`), 0600))

	// --- Act ---
	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", path})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse settings file")
}

func TestRun_CompletesSession(t *testing.T) {
	// --- Arrange ---
	answers := strings.Join([]string{
		"Alex", "1", "Sam", "30",
		"500", "Goa", "1", "1", "01/01/2025", "5", "2",
	}, "\n") + "\n"
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(answers), out, &bytes.Buffer{}, []string{"-log-level", "error"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "=== Trip Summary ===")
	require.Contains(t, out.String(), "Weather Preference: Moderate\n")
}
