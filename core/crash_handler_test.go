package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/SimonWoodburyForget/hextime/terminal"
)

// stubExit records the exit code and registers c for the duration of the test
func stubExit(t *testing.T, c *terminal.Cursor) *int {
	t.Helper()
	code := -1
	orig := exit
	exit = func(c int) { code = c }
	SetCrashCursor(c)
	t.Cleanup(func() {
		exit = orig
		SetCrashCursor(nil)
	})
	return &code
}

func TestCrashRestoresHiddenCursor(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cursor := &terminal.Cursor{}
	cursor.Hide(&bytes.Buffer{})
	code := stubExit(t, cursor)

	crash(&stdout, &stderr, errors.New("timestamp overflows 32 bits"))

	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if got := stdout.String(); got != "\x1b[0m\x1b[?25h" {
		t.Errorf("Expected reset and cursor show on stdout, got %q", got)
	}
	if !strings.Contains(stderr.String(), "timestamp overflows 32 bits") {
		t.Errorf("Expected diagnostic on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Stack Trace:") {
		t.Error("Expected stack trace on stderr")
	}
}

func TestCrashLeavesStatusBarStreamClean(t *testing.T) {
	tests := []struct {
		name   string
		cursor *terminal.Cursor
		hide   bool // the loop attempted to hide the cursor
	}{
		{"markup mode", &terminal.Cursor{}, false},
		{"piped terminal mode", terminal.NewCursor(false), true},
		{"no cursor registered", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.hide {
				tt.cursor.Hide(&bytes.Buffer{})
			}
			var stdout, stderr bytes.Buffer
			code := stubExit(t, tt.cursor)

			crash(&stdout, &stderr, "boom")

			if stdout.Len() != 0 {
				t.Errorf("Expected nothing on stdout, got %q", stdout.String())
			}
			if *code != 1 {
				t.Errorf("Expected exit code 1, got %d", *code)
			}
		})
	}
}

func TestHandleCrashNil(t *testing.T) {
	code := stubExit(t, nil)

	HandleCrash(nil)
	if *code != -1 {
		t.Error("HandleCrash(nil) must not exit")
	}
}
