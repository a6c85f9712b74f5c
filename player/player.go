package player

import (
	"math"

	"previewfm/blueprint"
	"previewfm/util"
)

// Controller binds the queue to an AudioEngine and implements the transport
// state machine. Every failure mode degrades to a no-op, so the transport
// controls stay responsive even on an empty queue.
type Controller struct {
	Engine  AudioEngine
	Queue   Queue
	playing bool
	loaded  bool
}

func NewController(engine AudioEngine) *Controller {
	return &Controller{Engine: engine}
}

// ReplaceQueue swaps in a new queue. A non-empty queue loads its first track
// without starting playback.
func (c *Controller) ReplaceQueue(tracks []blueprint.Track) {
	c.Queue.Replace(tracks)
	c.playing = false
	c.loaded = false
	if !c.Queue.IsEmpty() {
		c.Load(0)
	}
}

// Load points the engine at track i. A non-existent index silently does nothing.
func (c *Controller) Load(i int) {
	if i < 0 || i >= c.Queue.Len() {
		return
	}
	c.Queue.CurrentIndex = i
	c.Engine.SetSource(c.Queue.Tracks[i].PreviewURL)
	c.loaded = true
	c.playing = false
}

// Play starts playback. Playing before a track is loaded is a no-op, and
// engine refusals (autoplay policies and the like) are swallowed.
func (c *Controller) Play() {
	if !c.loaded {
		return
	}
	if err := c.Engine.Play(); err != nil {
		return
	}
	c.playing = true
}

func (c *Controller) Pause() {
	if !c.loaded {
		return
	}
	c.Engine.Pause()
	c.playing = false
}

// Toggle flips between playing and paused; the transport button label follows
// Playing().
func (c *Controller) Toggle() {
	if c.playing {
		c.Pause()
		return
	}
	c.Play()
}

func (c *Controller) Playing() bool {
	return c.playing
}

// Next advances the cursor, wrapping past the end, and plays the track it
// lands on.
func (c *Controller) Next() {
	if c.Queue.IsEmpty() {
		return
	}
	c.Load(c.Queue.Advance(1))
	c.Play()
}

// Prev moves the cursor back, wrapping past the start, and plays.
func (c *Controller) Prev() {
	if c.Queue.IsEmpty() {
		return
	}
	c.Load(c.Queue.Advance(-1))
	c.Play()
}

// SelectIndex loads track i and immediately starts playback.
func (c *Controller) SelectIndex(i int) {
	if i < 0 || i >= c.Queue.Len() {
		return
	}
	c.Load(i)
	c.Play()
}

// OnEnded is the auto-advance hook for the engine's ended event.
func (c *Controller) OnEnded() {
	c.Next()
}

// SeekPercent maps a normalized [0,100] position onto the track. An unknown
// duration counts as 0, so seeking before metadata loads lands at the start.
func (c *Controller) SeekPercent(position float64) {
	duration := c.Engine.Duration()
	if math.IsNaN(duration) {
		duration = 0
	}
	c.Engine.Seek(position / 100 * duration)
}

// SetVolume applies a normalized [0,1] volume directly to the engine.
func (c *Controller) SetVolume(volume float64) {
	c.Engine.SetVolume(volume)
}

// Elapsed returns the formatted playback position for the transport display.
func (c *Controller) Elapsed() string {
	return util.FormatTime(c.Engine.Position())
}

// Total returns the formatted track duration for the transport display.
func (c *Controller) Total() string {
	return util.FormatTime(c.Engine.Duration())
}

// NowPlaying returns the current track for display, nil when the queue is empty.
func (c *Controller) NowPlaying() *blueprint.Track {
	return c.Queue.Current()
}
