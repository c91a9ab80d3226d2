// Package testutil provides shared helpers for progdeck's tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/progdeck/progdeck/internal/app"
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

// WriteFiles writes the given relative-path -> content map under root,
// creating parent directories as needed.
func WriteFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// HarnessResult holds the outcomes of a full startup run. Out and Log keep
// accumulating if the test goes on to call App.Run.
type HarnessResult struct {
	App *app.App
	Dir string
	Out *SafeBuffer
	Log *SafeBuffer
	Err error
}

// StartApp provides a standardized harness for startup tests: it lays the
// given files out in a temp dir, points the app at it, feeds the given
// console input, and captures panics as errors the way the entrypoint does.
// The optional mutate hook can adjust the derived config before startup.
func StartApp(t *testing.T, files map[string]string, input string, mutate func(tmpDir string, cfg *app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	WriteFiles(t, tmpDir, files)

	programsDir := filepath.Join(tmpDir, "programs")
	require.NoError(t, os.MkdirAll(programsDir, 0o755))

	cfg := app.Config{
		ConfigPath:   filepath.Join(tmpDir, "progdeck.hcl"),
		ProgramsPath: programsDir,
		StorePath:    filepath.Join(tmpDir, "recaman_sequence.json"),
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if mutate != nil {
		mutate(tmpDir, &cfg)
	}

	outBuf := &SafeBuffer{}
	logBuf := &SafeBuffer{}

	var testApp *app.App
	var panicErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp = app.New(strings.NewReader(input), outBuf, logBuf, &cfg)
	}()

	return &HarnessResult{
		App: testApp,
		Dir: tmpDir,
		Out: outBuf,
		Log: logBuf,
		Err: panicErr,
	}
}
