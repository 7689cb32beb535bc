//nolint:errcheck,gosec // Test file with acceptable error handling patterns
package log

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn while stdout is redirected to a pipe and
// returns everything written in the meantime.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSetDebugMode(t *testing.T) {
	originalDebugMode := debugMode
	defer func() { debugMode = originalDebugMode }()

	tests := []struct {
		name    string
		enabled bool
	}{
		{name: "enable debug", enabled: true},
		{name: "disable debug", enabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDebugMode(tt.enabled)
			if debugMode != tt.enabled {
				t.Errorf("SetDebugMode(%v) did not set debugMode correctly", tt.enabled)
			}
		})
	}
}

func TestDebugOutput(t *testing.T) {
	originalDebugMode := debugMode
	defer func() { debugMode = originalDebugMode }()

	SetDebugMode(true)
	output := captureStdout(t, func() {
		Debug("test %s", "message")
	})

	if !strings.Contains(output, "test message") {
		t.Errorf("Debug() did not output expected message, got: %s", output)
	}
	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("Debug() did not include [DEBUG] prefix, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	originalDebugMode := debugMode
	defer func() { debugMode = originalDebugMode }()

	SetDebugMode(false)
	output := captureStdout(t, func() {
		Debug("should not appear")
	})

	if strings.Contains(output, "should not appear") {
		t.Errorf("Debug() produced output while disabled: %s", output)
	}
}

func TestInfoOutput(t *testing.T) {
	output := captureStdout(t, func() {
		Info("processed %d records", 3)
	})

	if !strings.Contains(output, "processed 3 records") {
		t.Errorf("Info() did not output expected message, got: %s", output)
	}
}

func TestWarnOutput(t *testing.T) {
	output := captureStdout(t, func() {
		Warn("skipping %s", "someone@example.com")
	})

	if !strings.Contains(output, "skipping someone@example.com") {
		t.Errorf("Warn() did not output expected message, got: %s", output)
	}
	if !strings.Contains(output, "[!]") {
		t.Errorf("Warn() did not include [!] prefix, got: %s", output)
	}
}

func TestInfoH2Output(t *testing.T) {
	output := captureStdout(t, func() {
		InfoH2("Storage Type: %s", "EXTERNAL")
	})

	if !strings.Contains(output, "Storage Type: EXTERNAL") {
		t.Errorf("InfoH2() did not output expected message, got: %s", output)
	}
}
