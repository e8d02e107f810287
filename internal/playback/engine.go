package playback

import (
	"sync"
	"time"
)

// Event is a notification emitted by the playback engine.
type Event int

const (
	EventPlay Event = iota
	EventPause
	EventEnd
)

func (e Event) String() string {
	switch e {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnd:
		return "end"
	default:
		return ""
	}
}

// Engine is the surface consumed from the external playback transport.
type Engine interface {
	Play()
	Pause()
	Seek(seconds float64)
	Position() float64
	Duration() float64
	SetRate(multiplier float64)

	// OnEvent registers a listener for play/pause/end notifications.
	// Listeners are invoked synchronously from the call that caused the event.
	OnEvent(fn func(Event))
}

// Clock is a state-only [Engine]: it advances a playback position against
// wall time while playing. It stands in for the real transport's clock and
// mirrors its notification behavior.
type Clock struct {
	mu        sync.Mutex
	playing   bool
	base      float64 // Position when playback last started or seeked
	startedAt time.Time
	duration  float64
	rate      float64
	listeners []func(Event)
	now       func() time.Time
}

// NewClock creates a paused Clock for a track of the given duration.
func NewClock(duration float64) *Clock {
	return &Clock{
		duration: duration,
		rate:     1.0,
		now:      time.Now,
	}
}

// Play starts or resumes the clock and notifies listeners.
func (c *Clock) Play() {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	c.playing = true
	c.startedAt = c.now()
	listeners := c.snapshot()
	c.mu.Unlock()

	emit(listeners, EventPlay)
}

// Pause freezes the clock at the current position and notifies listeners.
func (c *Clock) Pause() {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.base = c.position()
	c.playing = false
	listeners := c.snapshot()
	c.mu.Unlock()

	emit(listeners, EventPause)
}

// Seek moves the clock to the given position, clamped to [0, duration].
func (c *Clock) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seconds < 0 {
		seconds = 0
	}
	if c.duration > 0 && seconds > c.duration {
		seconds = c.duration
	}
	c.base = seconds
	c.startedAt = c.now()
}

// Position returns the current playback position in seconds. Reaching the
// end of the track pauses the clock and emits [EventEnd].
func (c *Clock) Position() float64 {
	c.mu.Lock()
	pos := c.position()
	ended := c.playing && c.duration > 0 && pos >= c.duration
	if ended {
		c.base = c.duration
		c.playing = false
		pos = c.duration
	}
	listeners := c.snapshot()
	c.mu.Unlock()

	if ended {
		emit(listeners, EventEnd)
	}
	return pos
}

// Load points the clock at a new track: paused, position zero, with the
// given duration. Listeners and rate carry over.
func (c *Clock) Load(duration float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playing = false
	c.base = 0
	c.duration = duration
}

// Duration returns the track duration in seconds.
func (c *Clock) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// SetRate changes the playback rate multiplier. Non-positive rates are ignored.
func (c *Clock) SetRate(multiplier float64) {
	if multiplier <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-anchor so the elapsed segment keeps its old rate.
	c.base = c.position()
	c.startedAt = c.now()
	c.rate = multiplier
}

// OnEvent registers a notification listener.
func (c *Clock) OnEvent(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetNow overrides the wall clock, for tests.
func (c *Clock) SetNow(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = c.position()
	c.now = now
	c.startedAt = now()
}

// position computes the current position. Callers must hold mu.
func (c *Clock) position() float64 {
	if !c.playing {
		return c.base
	}
	return c.base + c.now().Sub(c.startedAt).Seconds()*c.rate
}

func (c *Clock) snapshot() []func(Event) {
	out := make([]func(Event), len(c.listeners))
	copy(out, c.listeners)
	return out
}

func emit(listeners []func(Event), e Event) {
	for _, fn := range listeners {
		fn(e)
	}
}
