package playback

import (
	"sync"
	"time"
)

// Ticker delivers the engine position to a callback at a fixed frame
// interval while playback is active. It replaces per-frame polling with an
// explicit scheduled tick that pauses and resumes with the engine.
type Ticker struct {
	engine   Engine
	interval time.Duration
	onTick   func(position float64)

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

// NewTicker creates a Ticker bound to the engine's play/pause/end
// notifications. Ticks start on [EventPlay] and stop on [EventPause] and
// [EventEnd]; Stop tears the binding down for good.
func NewTicker(engine Engine, interval time.Duration, onTick func(position float64)) *Ticker {
	t := &Ticker{
		engine:   engine,
		interval: interval,
		onTick:   onTick,
	}

	engine.OnEvent(func(e Event) {
		switch e {
		case EventPlay:
			t.start()
		case EventPause, EventEnd:
			t.pause()
		}
	})

	return t
}

// start launches the tick loop if one is not already running.
func (t *Ticker) start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || t.stop != nil {
		return
	}

	stop := make(chan struct{})
	t.stop = stop

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.onTick(t.engine.Position())
			}
		}
	}()
}

// pause halts the tick loop; a later start resumes it.
func (t *Ticker) pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Stop cancels the ticker permanently. Idempotent.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.stopped = true
}

// Running reports whether the tick loop is currently active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}
