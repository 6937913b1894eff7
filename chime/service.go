package chime

import (
	"fmt"
	"log"
	"sync"

	"github.com/SimonWoodburyForget/hextime/constant"
	"github.com/SimonWoodburyForget/hextime/service"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var _ service.Service = (*Service)(nil)

// Service owns the speaker and rings the bell on request
type Service struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	started bool
}

// NewService creates an unstarted chime at the default rate and volume
func NewService() *Service {
	return &Service{
		rate:   beep.SampleRate(constant.AudioSampleRate),
		volume: constant.DefaultChimeVolume,
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "chime"
}

// Init implements service.Service
// args[0]: volume in [0,1] (optional)
func (s *Service) Init(args ...any) error {
	if len(args) == 0 {
		return nil
	}
	vol, ok := args[0].(float64)
	if !ok {
		return fmt.Errorf("chime volume: unexpected %T", args[0])
	}
	if vol < 0 || vol > 1 {
		return fmt.Errorf("chime volume %.2f out of range [0,1]", vol)
	}
	s.mu.Lock()
	s.volume = vol
	s.mu.Unlock()
	return nil
}

// Start implements service.Service - opens the audio device
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	s.started = true
	return nil
}

// Ring plays one bell; a no-op until Start succeeds
func (s *Service) Ring() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	bell, err := NewBell(s.rate, s.volume)
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}
	speaker.Play(bell)
}

// Stop implements service.Service - silences and releases the device
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	s.started = false
	return nil
}
