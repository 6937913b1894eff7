// Package core holds process-level plumbing shared by every entry point.
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/SimonWoodburyForget/hextime/terminal"
)

// exit is swapped in tests
var exit = os.Exit

// crashCursor is the guard restored before a crash report
var crashCursor atomic.Pointer[terminal.Cursor]

// SetCrashCursor registers the cursor guard of the render loop.
// A crash restores it, so stdout only receives escapes if the cursor was hidden.
func SetCrashCursor(c *terminal.Cursor) {
	crashCursor.Store(c)
}

// HandleCrash restores the terminal, prints the panic and stack trace, and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crash(os.Stdout, os.Stderr, r)
}

func crash(stdout, stderr io.Writer, r any) {
	// Status-bar and piped streams never hid the cursor and get nothing here
	if c := crashCursor.Load(); c != nil {
		c.Restore(stdout)
	}
	if f, ok := stdout.(*os.File); ok {
		f.Sync()
	}

	// Leave the overwritten clock line intact
	fmt.Fprintf(stderr, "\n\x1b[31mhextime: fatal: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())

	log.Printf("crash: %v\n%s", r, debug.Stack())
	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
