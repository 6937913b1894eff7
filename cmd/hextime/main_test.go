package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/SimonWoodburyForget/hextime/constant"
	"github.com/SimonWoodburyForget/hextime/encode"
	"github.com/SimonWoodburyForget/hextime/palette"
	"github.com/SimonWoodburyForget/hextime/terminal"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{
			name: "defaults",
			args: []string{"xmobar"},
			want: options{mode: encode.MarkupTag, depth: terminal.DepthBasic, scheme: palette.FourTone,
				interval: constant.RefreshInterval, volume: constant.DefaultChimeVolume},
		},
		{
			name: "flags before mode",
			args: []string{"-color", "256", "-once", "term"},
			want: options{mode: encode.AnsiTerminal, depth: terminal.Depth256, scheme: palette.FourTone,
				interval: constant.RefreshInterval, once: true, volume: constant.DefaultChimeVolume},
		},
		{
			name: "flags after mode",
			args: []string{"hex", "-scheme", "two", "-next", "1h", "-interval", "500ms"},
			want: options{mode: encode.PlainHex, depth: terminal.DepthBasic, scheme: palette.TwoTone,
				next: time.Hour, interval: 500 * time.Millisecond, volume: constant.DefaultChimeVolume},
		},
		{
			name: "chime",
			args: []string{"-chime", "-volume", "0.2", "-debug", "plain"},
			want: options{mode: encode.PlainHex, depth: terminal.DepthBasic, scheme: palette.FourTone,
				interval: constant.RefreshInterval, chime: true, volume: 0.2, debug: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			got, err := parseOptions(tt.args, &stderr)
			if err != nil {
				t.Fatalf("parseOptions(%v): %v\n%s", tt.args, err, stderr.String())
			}
			if got != tt.want {
				t.Errorf("parseOptions(%v) =\n%+v\nwant\n%+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseOptionsRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing mode", nil, nil},
		{"unknown mode", []string{"lcd"}, encode.ErrInvalidMode},
		{"extra argument", []string{"term", "extra"}, nil},
		{"bad color", []string{"-color", "cga", "term"}, terminal.ErrInvalidDepth},
		{"bad scheme", []string{"-scheme", "three", "term"}, palette.ErrInvalidScheme},
		{"sub-second next", []string{"-next", "10ms", "term"}, nil},
		{"negative next", []string{"-next", "-1s", "term"}, nil},
		{"zero interval", []string{"-interval", "0s", "term"}, nil},
		{"loud volume", []string{"-volume", "2", "term"}, nil},
		{"unknown flag", []string{"-frobnicate", "term"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := parseOptions(tt.args, &stderr)
			if !errors.Is(err, errUsage) {
				t.Fatalf("Expected usage error, got %v", err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v in chain, got %v", tt.is, err)
			}
		})
	}
}

func TestUsageListsModes(t *testing.T) {
	var stderr bytes.Buffer
	parseOptions([]string{"lcd"}, &stderr)

	for _, token := range encode.Tokens() {
		if !strings.Contains(stderr.String(), token) {
			t.Errorf("usage does not list mode %q:\n%s", token, stderr.String())
		}
	}
}

func TestHelpIsNotAnError(t *testing.T) {
	var stderr bytes.Buffer
	_, err := parseOptions([]string{"-h"}, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Usage: hextime") {
		t.Errorf("Expected usage text, got %q", stderr.String())
	}
}
