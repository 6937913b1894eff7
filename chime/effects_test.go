package chime

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drainLimit bounds streams that pad with silence instead of ending
const drainLimit = 1 << 16

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < drainLimit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func TestToneRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	tone, err := NewTone(440, duration, rate)
	if err != nil {
		t.Fatal(err)
	}
	samples := drain(tone)

	if len(samples) != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d out of range or not mono: %v", i, s)
		}
	}
}

func TestToneExhausted(t *testing.T) {
	osc, err := NewTone(440, 10*time.Millisecond, beep.SampleRate(8000))
	if err != nil {
		t.Fatal(err)
	}
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Expected (0, false) after drain, got (%d, %v)", n, ok)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got %v", osc.Err())
	}
}

func TestToneAboveNyquist(t *testing.T) {
	if _, err := NewTone(5000, time.Second, beep.SampleRate(8000)); err == nil {
		t.Error("Expected error for a tone above half the sample rate")
	}
	if _, err := NewBell(beep.SampleRate(2000), 0.5); err == nil {
		t.Error("Expected bell error when partials exceed the sample rate")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	// Constant 1.0 source isolates the envelope gain
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})

	out := drain(NewEnvelope(src, duration, 10*time.Millisecond, 20*time.Millisecond, rate))
	if len(out) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(out))
	}

	if out[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", out[0][0])
	}
	if out[5][0] <= 0 || out[5][0] >= 1 {
		t.Errorf("Mid-attack gain should be in (0,1), got %f", out[5][0])
	}
	if out[50][0] != 1 {
		t.Errorf("Sustain gain should be 1, got %f", out[50][0])
	}
	if out[99][0] >= out[85][0] {
		t.Errorf("Release should decay: %f then %f", out[85][0], out[99][0])
	}
}

func TestBellIsAudibleAndBounded(t *testing.T) {
	rate := beep.SampleRate(8000)
	bell, err := NewBell(rate, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	samples := drain(bell)

	if len(samples) == 0 {
		t.Fatal("Expected bell samples")
	}

	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("Bell is silent")
	}
	if peak > 1 {
		t.Errorf("Bell clips: peak %f", peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	bell, err := NewBell(rate, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range drain(bell) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}

func TestServiceInit(t *testing.T) {
	s := NewService()
	if s.Name() != "chime" {
		t.Errorf("Name() = %q", s.Name())
	}
	if err := s.Init(0.25); err != nil {
		t.Fatal(err)
	}
	if s.volume != 0.25 {
		t.Errorf("volume = %f", s.volume)
	}
	if err := s.Init(1.5); err == nil {
		t.Error("Expected out-of-range volume error")
	}
	if err := s.Init("loud"); err == nil {
		t.Error("Expected type error")
	}
}

func TestServiceUnstartedIsInert(t *testing.T) {
	s := NewService()
	s.Ring() // must not touch the speaker
	if err := s.Stop(); err != nil {
		t.Errorf("Stop on unstarted service: %v", err)
	}
}
