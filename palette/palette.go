// Package palette defines the fixed clock colors and the byte-position schemes that use them.
package palette

import (
	"fmt"

	"github.com/SimonWoodburyForget/hextime/terminal"
	"github.com/gdamore/tcell/v2"
)

// Color is a member of the closed clock palette
type Color uint8

const (
	Gray Color = iota
	LightGray
	Red
	Yellow
	Blue
	Green
	Cyan

	colorCount
)

// Canonical 24-bit values; markup consumers depend on these exact digits
var rgbTable = [colorCount]tcell.Color{
	Gray:      tcell.NewHexColor(0x999999),
	LightGray: tcell.NewHexColor(0xcccccc),
	Red:       tcell.NewHexColor(0xff0000),
	Yellow:    tcell.NewHexColor(0xffff00),
	Blue:      tcell.NewHexColor(0x0000ff),
	Green:     tcell.NewHexColor(0x00ff00),
	Cyan:      tcell.NewHexColor(0x00ffff),
}

// Basic SGR approximation: muted roles dark gray, emphasis roles white
var sgrTable = [colorCount]uint8{
	Gray:      terminal.SGRDarkGray,
	LightGray: terminal.SGRWhite,
	Red:       terminal.SGRRed,
	Yellow:    terminal.SGRYellow,
	Blue:      terminal.SGRBlue,
	Green:     terminal.SGRGreen,
	Cyan:      terminal.SGRCyan,
}

var nameTable = [colorCount]string{
	Gray:      "gray",
	LightGray: "lightgray",
	Red:       "red",
	Yellow:    "yellow",
	Blue:      "blue",
	Green:     "green",
	Cyan:      "cyan",
}

// xterm-256 matches are expensive, so they are resolved once
var index256Table [colorCount]uint8

func init() {
	for c := Color(0); c < colorCount; c++ {
		index256Table[c] = terminal.Nearest256(rgbTable[c])
	}
}

// Colors returns every palette member in declaration order
func Colors() []Color {
	all := make([]Color, colorCount)
	for i := range all {
		all[i] = Color(i)
	}
	return all
}

// Valid reports whether c is a palette member
func (c Color) Valid() bool {
	return c < colorCount
}

// Tcell returns the color as a tcell RGB color; invalid colors map to black
func (c Color) Tcell() tcell.Color {
	if !c.Valid() {
		return tcell.ColorBlack
	}
	return rgbTable[c]
}

// RGB returns the 24-bit value 0xRRGGBB
func (c Color) RGB() uint32 {
	return uint32(c.Tcell().Hex()) & 0xffffff
}

// Components returns the individual channels
func (c Color) Components() (r, g, b uint8) {
	v := c.RGB()
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// SGR returns the basic terminal foreground code approximating c
func (c Color) SGR() uint8 {
	if !c.Valid() {
		return terminal.SGRWhite
	}
	return sgrTable[c]
}

// Index256 returns the nearest xterm-256 palette index
func (c Color) Index256() uint8 {
	if !c.Valid() {
		return 16
	}
	return index256Table[c]
}

const lowerHex = "0123456789abcdef"

// AppendHex appends exactly six lowercase hex digits of the RGB value
func (c Color) AppendHex(dst []byte) []byte {
	v := c.RGB()
	for shift := 20; shift >= 0; shift -= 4 {
		dst = append(dst, lowerHex[(v>>uint(shift))&0xf])
	}
	return dst
}

// Hex returns the six-digit lowercase RGB form, e.g. "999999"
func (c Color) Hex() string {
	return string(c.AppendHex(make([]byte, 0, 6)))
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return nameTable[c]
}
