package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Bell Sound
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 300 * time.Millisecond

	// BellFundamental is A5, the overtone sits an octave up
	BellFundamental = 880.0
	BellOvertone    = 1760.0
)

// DefaultChimeVolume is the master gain for the rollover bell
const DefaultChimeVolume = 0.5
