// Package audio plays the game's one-shot sound effects through beep.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	SampleRate = beep.SampleRate(48000)

	resampleQuality = 4
)

// Mixer owns the speaker. Effects are added to a single beep.Mixer that is
// played for the whole session, so triggering a sound never blocks on it.
type Mixer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewMixer creates a mixer for the given output sample rate.
func NewMixer(rate beep.SampleRate) *Mixer {
	return &Mixer{
		mixer: &beep.Mixer{},
		rate:  rate,
	}
}

// Init opens the audio device.
func (m *Mixer) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops every playing sound.
func (m *Mixer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Load decodes a WAV file into an effect that can be played any number of
// times.
func (m *Mixer) Load(data []byte) (*Effect, error) {
	buffer, err := Decode(data, m.rate)
	if err != nil {
		return nil, err
	}
	return &Effect{mixer: m, buffer: buffer}, nil
}

func (m *Mixer) add(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Decode reads a WAV file fully into memory, resampled to rate.
func Decode(data []byte, rate beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != rate {
		source = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  rate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buffer.Append(source)

	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	return buffer, nil
}

// Effect is a decoded sound.
type Effect struct {
	mixer  *Mixer
	buffer *beep.Buffer
}

// Play starts the sound and returns immediately. Overlapping plays mix.
func (e *Effect) Play() {
	e.mixer.add(e.buffer.Streamer(0, e.buffer.Len()))
}

// Duration returns how long the effect plays.
func (e *Effect) Duration() time.Duration {
	return e.buffer.Format().SampleRate.D(e.buffer.Len())
}

// Silent is an effect that plays nothing, used when sound is muted or the
// audio device is unavailable.
type Silent struct{}

func (Silent) Play() {}
