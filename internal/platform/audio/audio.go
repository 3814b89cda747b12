// Package audio plays the sound cues requested by the arkanoid simulation.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Play(cue arkanoid.Cue)
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(arkanoid.Cue) {}

// tone describes the short beep used for a cue.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[arkanoid.Cue]tone{
	arkanoid.CueWallOrBrick: {freq: 880, duration: 40 * time.Millisecond},
	arkanoid.CuePaddle:      {freq: 440, duration: 60 * time.Millisecond},
	arkanoid.CueGameOver:    {freq: 220, duration: 600 * time.Millisecond},
}

// Speaker plays cues on the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker. Call Init before playing.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the cue's tone. Cues played before Init are dropped.
func (s *Speaker) Play(cue arkanoid.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st, err := cueStreamer(cue)
	if err != nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences pending cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// cueStreamer builds a finite, quietened sine tone for the cue.
func cueStreamer(cue arkanoid.Cue) (beep.Streamer, error) {
	t, ok := tones[cue]
	if !ok {
		t = tones[arkanoid.CueWallOrBrick]
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}
