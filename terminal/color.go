package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorDepth selects how a foreground color is expressed on the wire
type ColorDepth uint8

const (
	DepthBasic     ColorDepth = iota // SGR 30-37/90-97, fixed approximation
	Depth256                         // xterm-256 palette index
	DepthTrueColor                   // 24-bit RGB
)

// ErrInvalidDepth is returned for an unknown color depth token
var ErrInvalidDepth = errors.New("invalid color depth")

func (d ColorDepth) String() string {
	switch d {
	case DepthBasic:
		return "basic"
	case Depth256:
		return "256"
	case DepthTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("ColorDepth(%d)", uint8(d))
	}
}

// ParseDepth resolves a depth token; "auto" defers to DetectColorDepth on stdout
func ParseDepth(token string) (ColorDepth, error) {
	switch strings.ToLower(token) {
	case "basic", "16", "8":
		return DepthBasic, nil
	case "256":
		return Depth256, nil
	case "truecolor", "true", "24bit":
		return DepthTrueColor, nil
	case "auto", "":
		return DetectColorDepth(os.Stdout), nil
	default:
		return DepthBasic, fmt.Errorf("%w %q (valid: auto, basic, 256, truecolor)", ErrInvalidDepth, token)
	}
}

// DetectColorDepth determines the color capability of f from the environment.
// Output that is not a terminal gets the basic set.
func DetectColorDepth(f *os.File) ColorDepth {
	return detectColorDepth(os.Getenv, IsTerminal(f))
}

func detectColorDepth(getenv func(string) string, tty bool) ColorDepth {
	if !tty {
		return DepthBasic
	}

	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return DepthTrueColor
	}

	if getenv("KITTY_WINDOW_ID") != "" ||
		getenv("KONSOLE_VERSION") != "" ||
		getenv("ITERM_SESSION_ID") != "" ||
		getenv("ALACRITTY_WINDOW_ID") != "" ||
		getenv("WEZTERM_PANE") != "" {
		return DepthTrueColor
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return DepthTrueColor
	}
	if strings.Contains(term, "256color") {
		return Depth256
	}

	return DepthBasic
}

// xterm256 holds palette entries 16-255; 0-15 are user-themed and unreliable
var xterm256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()

// Nearest256 returns the xterm-256 index perceptually closest to c
func Nearest256(c tcell.Color) uint8 {
	match := tcell.FindColor(c, xterm256)
	for i, p := range xterm256 {
		if p == match {
			return uint8(i + 16)
		}
	}
	return 16
}
