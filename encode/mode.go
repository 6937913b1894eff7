// Package encode serializes colored timestamp bytes for status bars and terminals.
package encode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode selects the output form, fixed for the process lifetime
type Mode uint8

const (
	// MarkupTag wraps each byte in an xmobar <fc=#rrggbb> tag
	MarkupTag Mode = iota
	// PlainHex emits bare uppercase hex digits
	PlainHex
	// AnsiTerminal colors each byte with SGR sequences
	AnsiTerminal

	modeCount
)

// ErrInvalidMode is returned for an unrecognized mode token
var ErrInvalidMode = errors.New("invalid render mode")

var modeTokens = map[string]Mode{
	"xmobar": MarkupTag,
	"markup": MarkupTag,
	"bar":    MarkupTag,
	"plain":  PlainHex,
	"hex":    PlainHex,
	"term":   AnsiTerminal,
	"ansi":   AnsiTerminal,
}

var modeNames = [modeCount]string{
	MarkupTag:    "xmobar",
	PlainHex:     "plain",
	AnsiTerminal: "term",
}

// ParseMode resolves a startup token; the error lists every valid token
func ParseMode(token string) (Mode, error) {
	if m, ok := modeTokens[strings.ToLower(token)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w %q (valid: %s)", ErrInvalidMode, token, strings.Join(Tokens(), ", "))
}

// Tokens returns the accepted mode tokens, sorted
func Tokens() []string {
	tokens := make([]string, 0, len(modeTokens))
	for k := range modeTokens {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return tokens
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m < modeCount
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}
