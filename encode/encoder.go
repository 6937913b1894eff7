package encode

import (
	"github.com/SimonWoodburyForget/hextime/clock"
	"github.com/SimonWoodburyForget/hextime/palette"
	"github.com/SimonWoodburyForget/hextime/terminal"
)

const upperHex = "0123456789ABCDEF"

var (
	markupOpen  = []byte("<fc=#")
	markupClose = []byte("</fc>")
)

// Encoder renders (color, byte) pairs in one output mode.
// Encoding is stateless: the same pair always produces the same bytes.
type Encoder struct {
	mode  Mode
	depth terminal.ColorDepth
}

// New creates an encoder; depth only affects AnsiTerminal
func New(mode Mode, depth terminal.ColorDepth) *Encoder {
	return &Encoder{mode: mode, depth: depth}
}

// Mode returns the encoder's output mode
func (e *Encoder) Mode() Mode {
	return e.mode
}

// AppendSegment appends one encoded pair.
// AnsiTerminal output carries its own trailing space inside the colored span.
func (e *Encoder) AppendSegment(dst []byte, c palette.Color, b byte) []byte {
	switch e.mode {
	case MarkupTag:
		dst = append(dst, markupOpen...)
		dst = c.AppendHex(dst)
		dst = append(dst, '>')
		dst = appendHexByte(dst, b)
		return append(dst, markupClose...)
	case AnsiTerminal:
		dst = e.appendFg(dst, c)
		dst = appendHexByte(dst, b)
		dst = append(dst, ' ')
		return terminal.AppendReset(dst)
	default:
		return appendHexByte(dst, b)
	}
}

// AppendLine appends every position the scheme renders, each followed by one space
func (e *Encoder) AppendLine(dst []byte, ts clock.Timestamp, s palette.Scheme) []byte {
	segs := ts.Segments()
	for _, seg := range segs[s.First():] {
		dst = e.AppendSegment(dst, s.ColorAt(seg.Position), seg.Value)
		if e.mode != AnsiTerminal {
			dst = append(dst, ' ')
		}
	}
	return dst
}

// Segment returns a single encoded pair as a string
func (e *Encoder) Segment(c palette.Color, b byte) string {
	return string(e.AppendSegment(nil, c, b))
}

// Line returns an encoded line as a string
func (e *Encoder) Line(ts clock.Timestamp, s palette.Scheme) string {
	return string(e.AppendLine(nil, ts, s))
}

func (e *Encoder) appendFg(dst []byte, c palette.Color) []byte {
	switch e.depth {
	case terminal.Depth256:
		return terminal.AppendFg256(dst, c.Index256())
	case terminal.DepthTrueColor:
		r, g, b := c.Components()
		return terminal.AppendFgRGB(dst, r, g, b)
	default:
		return terminal.AppendFgBasic(dst, c.SGR())
	}
}

// appendHexByte appends two uppercase, zero-padded hex digits
func appendHexByte(dst []byte, b byte) []byte {
	return append(dst, upperHex[b>>4], upperHex[b&0x0f])
}
