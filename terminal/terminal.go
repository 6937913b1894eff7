package terminal

import (
	"io"
	"sync"
)

// Cursor tracks whether the cursor has been hidden so it can be shown again.
// Hide is a one-time side effect and Restore is final: once restored, the
// cursor is never hidden again. Restore may run from a signal or crash path
// concurrently with the render loop.
type Cursor struct {
	mu       sync.Mutex
	hidden   bool
	restored bool
	inert    bool
}

// NewCursor returns a guard for an output stream; when tty is false the
// stream is not a terminal and the guard never writes
func NewCursor(tty bool) *Cursor {
	return &Cursor{inert: !tty}
}

// Hidden reports whether Hide has taken effect
func (c *Cursor) Hidden() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hidden
}

// Hide writes the hide-cursor sequence on the first call; later calls are no-ops
func (c *Cursor) Hide(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inert || c.hidden || c.restored {
		return nil
	}
	if _, err := w.Write(csiCursorHide); err != nil {
		return err
	}
	c.hidden = true
	return nil
}

// Restore shows the cursor and resets SGR state if Hide took effect.
// Any later Hide is a no-op.
func (c *Cursor) Restore(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.restored = true
	if !c.hidden {
		return nil
	}
	seq := make([]byte, 0, len(csiReset)+len(csiCursorShow))
	seq = append(seq, csiReset...)
	seq = append(seq, csiCursorShow...)
	if _, err := w.Write(seq); err != nil {
		return err
	}
	c.hidden = false
	return nil
}

// Output serializes writes to an underlying stream so a shutdown path can
// write its final bytes without interleaving with the render loop
type Output struct {
	mu   sync.Mutex
	w    io.Writer
	done bool
}

// NewOutput wraps w
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write forwards p, or drops it once Finish has run
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		return len(p), nil
	}
	return o.w.Write(p)
}

// Finish gives fn exclusive access to the stream for its last writes.
// Only the first call runs; every Write after it is discarded.
func (o *Output) Finish(fn func(w io.Writer) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done {
		return nil
	}
	o.done = true
	return fn(o.w)
}
