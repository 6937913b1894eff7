package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SimonWoodburyForget/hextime/clock"
)

// Scheme maps byte positions of a timestamp to colors
type Scheme uint8

const (
	// FourTone colors all four bytes: gray, gray, green, light gray
	FourTone Scheme = iota
	// TwoTone renders only the low two bytes: cyan, light gray
	TwoTone

	schemeCount
)

// ErrInvalidScheme is returned for an unknown scheme token
var ErrInvalidScheme = errors.New("invalid color scheme")

type schemeDef struct {
	name   string
	first  int // first rendered position
	colors [clock.SegmentCount]Color
}

var schemeTable = [schemeCount]schemeDef{
	FourTone: {
		name:   "four",
		first:  0,
		colors: [clock.SegmentCount]Color{Gray, Gray, Green, LightGray},
	},
	TwoTone: {
		name:   "two",
		first:  2,
		colors: [clock.SegmentCount]Color{Gray, Gray, Cyan, LightGray},
	},
}

// ParseScheme resolves a scheme token
func ParseScheme(token string) (Scheme, error) {
	switch strings.ToLower(token) {
	case "four", "4":
		return FourTone, nil
	case "two", "2":
		return TwoTone, nil
	default:
		return FourTone, fmt.Errorf("%w %q (valid: four, two)", ErrInvalidScheme, token)
	}
}

// Valid reports whether s is a known scheme
func (s Scheme) Valid() bool {
	return s < schemeCount
}

// First returns the most significant position the scheme renders
func (s Scheme) First() int {
	if !s.Valid() {
		return 0
	}
	return schemeTable[s].first
}

// ColorAt returns the color for a byte position; out-of-range positions are light gray
func (s Scheme) ColorAt(position int) Color {
	if !s.Valid() || position < 0 || position >= clock.SegmentCount {
		return LightGray
	}
	return schemeTable[s].colors[position]
}

func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
	return schemeTable[s].name
}
