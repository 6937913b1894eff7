package terminal

// Pre-allocated ANSI sequence fragments
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiEnd   = []byte("m")
	csiReset = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
)

// SGR foreground codes used by the fixed palette
const (
	SGRRed    uint8 = 31
	SGRGreen  uint8 = 32
	SGRYellow uint8 = 33
	SGRBlue   uint8 = 34
	SGRCyan   uint8 = 36
	SGRWhite  uint8 = 37

	SGRDarkGray uint8 = 90 // bright black
)

// appendUint8 appends the decimal form of n without allocation
func appendUint8(dst []byte, n uint8) []byte {
	switch {
	case n >= 100:
		return append(dst, n/100+'0', n/10%10+'0', n%10+'0')
	case n >= 10:
		return append(dst, n/10+'0', n%10+'0')
	default:
		return append(dst, n+'0')
	}
}

// AppendFgBasic appends an SGR foreground sequence for a basic color code
func AppendFgBasic(dst []byte, sgr uint8) []byte {
	dst = append(dst, csi...)
	dst = appendUint8(dst, sgr)
	return append(dst, csiEnd...)
}

// AppendFg256 appends a 256-color foreground sequence
func AppendFg256(dst []byte, index uint8) []byte {
	dst = append(dst, csiFg256...)
	dst = appendUint8(dst, index)
	return append(dst, csiEnd...)
}

// AppendFgRGB appends a 24-bit foreground sequence
func AppendFgRGB(dst []byte, r, g, b uint8) []byte {
	dst = append(dst, csiFgRGB...)
	dst = appendUint8(dst, r)
	dst = append(dst, ';')
	dst = appendUint8(dst, g)
	dst = append(dst, ';')
	dst = appendUint8(dst, b)
	return append(dst, csiEnd...)
}

// AppendReset appends SGR 0, restoring default colors and attributes
func AppendReset(dst []byte) []byte {
	return append(dst, csiReset...)
}
