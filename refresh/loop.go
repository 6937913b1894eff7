// Package refresh drives the clock: poll, render one line in place, sleep, repeat.
package refresh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/SimonWoodburyForget/hextime/clock"
	"github.com/SimonWoodburyForget/hextime/constant"
	"github.com/SimonWoodburyForget/hextime/encode"
	"github.com/SimonWoodburyForget/hextime/palette"
	"github.com/SimonWoodburyForget/hextime/status"
	"github.com/SimonWoodburyForget/hextime/terminal"
)

// ErrOutputWrite wraps any failure of the output sink; it is never retried
var ErrOutputWrite = errors.New("output write failed")

// State is the loop's position in its two-state cycle
type State uint8

const (
	Waiting State = iota
	Rendering
)

func (s State) String() string {
	if s == Rendering {
		return "rendering"
	}
	return "waiting"
}

// Config selects what the loop renders and how fast
type Config struct {
	Encoder *encode.Encoder
	Scheme  palette.Scheme

	// Next, when at least one second, appends the two-tone rendering of the
	// next multiple of Next after the current second
	Next time.Duration

	Interval     time.Duration // sleep after a rendered line
	PollInterval time.Duration // sleep after a poll with nothing new

	// Sleep replaces time.Sleep in tests
	Sleep func(time.Duration)

	// OnRollover is called when the minutes segment (byte 2) changes between renders
	OnRollover func(prev, cur clock.Timestamp)

	Cursor  *terminal.Cursor
	Metrics *status.Registry
}

// Loop renders each new second of a clock.Source to a single terminal line
type Loop struct {
	src   *clock.Source
	out   *bufio.Writer
	cfg   Config
	state State
	buf   []byte

	rendered *atomic.Int64
	skipped  *atomic.Int64
	skew     *atomic.Int64
	rollover *atomic.Int64
	last     *atomic.Uint32
}

// New creates a Loop writing to out. Zero durations take the package defaults.
func New(src *clock.Source, out io.Writer, cfg Config) *Loop {
	if cfg.Encoder == nil {
		cfg.Encoder = encode.New(encode.PlainHex, terminal.DepthBasic)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = constant.RefreshInterval
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = constant.PollInterval
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Cursor == nil {
		cfg.Cursor = &terminal.Cursor{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	return &Loop{
		src:      src,
		out:      bufio.NewWriterSize(out, 512),
		cfg:      cfg,
		buf:      make([]byte, 0, 256),
		rendered: cfg.Metrics.Ints.Get(constant.MetricRendered),
		skipped:  cfg.Metrics.Ints.Get(constant.MetricSkipped),
		skew:     cfg.Metrics.Ints.Get(constant.MetricSkew),
		rollover: cfg.Metrics.Ints.Get(constant.MetricRollover),
		last:     cfg.Metrics.Stamps.Get(constant.MetricLastLine),
	}
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// Run cycles forever; it only returns on an output failure
func (l *Loop) Run() error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}

// Step performs one WAITING poll and, if a new second arrived, one RENDERING pass.
// Either way it ends with the corresponding sleep.
func (l *Loop) Step() error {
	prev, hadPrev := l.src.Last()

	ts, ok, err := l.src.Poll()
	if err != nil {
		// Clock skew is benign: skip this poll
		l.skew.Add(1)
		log.Printf("refresh: poll skipped: %v", err)
		l.cfg.Sleep(l.cfg.PollInterval)
		return nil
	}
	if !ok {
		l.cfg.Sleep(l.cfg.PollInterval)
		return nil
	}

	l.state = Rendering
	err = l.render(ts)
	l.state = Waiting
	if err != nil {
		return err
	}

	l.account(prev, ts, hadPrev)
	l.cfg.Sleep(l.cfg.Interval)
	return nil
}

// render writes the line, hides the cursor once in terminal mode, then returns to column 0
func (l *Loop) render(ts clock.Timestamp) error {
	l.buf = l.appendLine(l.buf[:0], ts)

	if _, err := l.out.Write(l.buf); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	if l.cfg.Encoder.Mode() == encode.AnsiTerminal {
		if err := l.cfg.Cursor.Hide(l.out); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputWrite, err)
		}
	}

	if err := l.out.WriteByte('\r'); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}

func (l *Loop) appendLine(dst []byte, ts clock.Timestamp) []byte {
	enc := l.cfg.Encoder
	dst = enc.AppendLine(dst, ts, l.cfg.Scheme)

	if l.cfg.Next >= time.Second {
		next, err := ts.NextMultiple(l.cfg.Next)
		if err != nil {
			// The derived event lies past 2106; show the main clock alone
			log.Printf("refresh: next event omitted: %v", err)
			return dst
		}
		dst = enc.AppendLine(dst, next, palette.TwoTone)
	}
	return dst
}

// account updates counters and fires the rollover hook; missed seconds are never back-filled
func (l *Loop) account(prev, cur clock.Timestamp, hadPrev bool) {
	l.rendered.Add(1)
	l.last.Store(uint32(cur))

	if !hadPrev {
		return
	}
	if gap := int64(cur) - int64(prev) - 1; gap > 0 {
		l.skipped.Add(gap)
		log.Printf("refresh: skipped %d second(s) after %s", gap, prev)
	}
	if prev.Bytes()[2] != cur.Bytes()[2] {
		l.rollover.Add(1)
		if l.cfg.OnRollover != nil {
			l.cfg.OnRollover(prev, cur)
		}
	}
}

// Once renders a single newline-terminated line for non-interactive use.
// A clock before the epoch prints the skew notice instead.
func (l *Loop) Once() error {
	ts, _, err := l.src.Poll()
	if err != nil {
		l.skew.Add(1)
		l.buf = append(l.buf[:0], constant.SkewNotice...)
	} else {
		l.buf = l.appendLine(l.buf[:0], ts)
		if l.cfg.Encoder.Mode() != encode.AnsiTerminal {
			l.buf = bytes.TrimSuffix(l.buf, []byte{' '})
		}
		l.rendered.Add(1)
		l.last.Store(uint32(ts))
	}
	l.buf = append(l.buf, '\n')

	if _, err := l.out.Write(l.buf); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := l.out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}
