// Package terminal emits the ANSI sequences the clock needs on a line-oriented terminal.
//
// Features:
//   - Foreground color in basic (SGR 30-37/90-97), 256-color and 24-bit forms
//   - Color depth detection from COLORTERM/TERM when stdout is a terminal
//   - One-shot cursor hiding, skipped off a terminal, restored on exit or crash
//   - A serialized Output whose Finish writes the last bytes before exit
//
// Sequences are appended to caller-owned byte slices so a whole line can be
// written with a single call.
package terminal
