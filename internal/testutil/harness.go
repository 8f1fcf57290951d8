package testutil

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tripplanner/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a scripted session.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Answers joins scripted answers into stdin content, one per line.
func Answers(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// RunSession runs one planning session against the given stdin content.
// Logging is forced to debug so tests can assert on log lines.
func RunSession(t *testing.T, stdin string, cfg app.Config) *HarnessResult {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(strings.NewReader(stdin), out, logBuffer, appConfig)

	runErr := testApp.Run(context.Background())

	if os.Getenv("TRIPPLANNER_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
