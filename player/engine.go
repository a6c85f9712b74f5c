package player

import (
	"errors"
	"math"
)

// AudioEngine is the playback backend the controller drives. The browser's
// audio element is the reference implementation; StubEngine stands in for it
// in headless use.
type AudioEngine interface {
	SetSource(url string)
	Play() error
	Pause()
	Seek(seconds float64)
	SetVolume(volume float64)
	Position() float64
	// Duration reports NaN until the source's metadata is known.
	Duration() float64
}

// StubEngine is an in-memory AudioEngine. It tracks the state the controller
// cares about and nothing else; no audio is decoded.
type StubEngine struct {
	Source  string
	Playing bool
	Pos     float64
	Dur     float64
	Volume  float64
}

func NewStubEngine() *StubEngine {
	return &StubEngine{Dur: math.NaN(), Volume: 1}
}

// SetSource points the engine at a new clip. Like the audio element, this
// stops playback and forgets the previous duration.
func (e *StubEngine) SetSource(url string) {
	e.Source = url
	e.Pos = 0
	e.Dur = math.NaN()
	e.Playing = false
}

func (e *StubEngine) Play() error {
	if e.Source == "" {
		return errors.New("no source loaded")
	}
	e.Playing = true
	return nil
}

func (e *StubEngine) Pause() {
	e.Playing = false
}

func (e *StubEngine) Seek(seconds float64) {
	e.Pos = seconds
}

func (e *StubEngine) SetVolume(volume float64) {
	e.Volume = volume
}

func (e *StubEngine) Position() float64 {
	return e.Pos
}

func (e *StubEngine) Duration() float64 {
	return e.Dur
}
