// Package alert delivers the end-of-phase side effects: a short alert tone
// played through the system speaker and a desktop notification.
package alert

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// ErrAudioUnavailable indicates the speaker could not be initialized.
var ErrAudioUnavailable = errors.New("audio unavailable")

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880.0
	beepLength    = 180 * time.Millisecond
	gapLength     = 120 * time.Millisecond
	beepCount     = 2
	toneVolume    = -1.0
)

// Tone plays a double beep generated on the fly.
type Tone struct {
	mu      sync.Mutex
	enabled func() bool
	initErr error
	play    func(beep.Streamer)
}

// NewTone initializes the speaker. Audio failures do not prevent creation;
// PlayAlert reports them instead.
func NewTone(enabled func() bool) *Tone {
	tone := &Tone{
		enabled: enabled,
		play: func(streamer beep.Streamer) {
			speaker.Play(streamer)
		},
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: failed to initialize speaker: %v", err)
		tone.initErr = fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	return tone
}

// PlayAlert implements phasetimer.Alerter. It returns immediately; playback
// continues on the speaker goroutine.
func (tone *Tone) PlayAlert() error {
	if tone.enabled != nil && !tone.enabled() {
		return nil
	}
	if tone.initErr != nil {
		return tone.initErr
	}

	streamer, err := alertSequence(sampleRate)
	if err != nil {
		return fmt.Errorf("build alert tone: %w", err)
	}

	tone.mu.Lock()
	defer tone.mu.Unlock()
	tone.play(streamer)
	return nil
}

func alertSequence(rate beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer
	for i := 0; i < beepCount; i++ {
		sine, err := generators.SineTone(rate, toneFrequency)
		if err != nil {
			return nil, err
		}
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(rate.N(beepLength), sine),
			Base:     2,
			Volume:   toneVolume,
		})
		if i < beepCount-1 {
			parts = append(parts, beep.Silence(rate.N(gapLength)))
		}
	}
	return beep.Seq(parts...), nil
}
