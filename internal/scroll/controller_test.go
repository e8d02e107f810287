package scroll

import (
	"testing"
	"time"

	"github.com/desertthunder/vtx/internal/lyrics"
)

func testTimeline() lyrics.Timeline {
	return lyrics.Timeline{
		{Time: 0, Texts: []string{"one"}},
		{Time: 10, Texts: []string{"two"}},
		{Time: 20, Texts: []string{"three"}},
		{Time: 30, Texts: []string{"four"}},
	}
}

func testGeometry() Geometry {
	return Geometry{
		ViewportHeight: 10,
		PanelHeight:    2,
		EntryHeights:   []float64{4, 4, 4, 4},
	}
}

// manualClock drives the controller's deadline in tests.
type manualClock struct{ t time.Time }

func (m *manualClock) Now() time.Time            { return m.t }
func (m *manualClock) Advance(d time.Duration)   { m.t = m.t.Add(d) }
func newManualClock() *manualClock               { return &manualClock{t: time.Unix(5000, 0)} }
func newTestController(clk *manualClock) *Controller {
	c := NewController(3 * time.Second)
	c.SetNow(clk.Now)
	c.SetTimeline(testTimeline())
	c.SetGeometry(testGeometry())
	return c
}

func TestControllerAutoTick(t *testing.T) {
	clk := newManualClock()
	c := newTestController(clk)

	ins := c.Tick(0)
	if ins.Active != 0 || !ins.Changed || !ins.Animate {
		t.Errorf("first tick: got %+v, want active 0 changed animated", ins)
	}

	ins = c.Tick(5)
	if ins.Active != 0 || ins.Changed {
		t.Errorf("same entry: got %+v, want unchanged", ins)
	}

	ins = c.Tick(10)
	if ins.Active != 1 || !ins.Changed {
		t.Errorf("next entry: got %+v, want active 1 changed", ins)
	}

	// Entry 1 center is 6 in content space; visible center is 4.
	if ins.Offset != -2 {
		t.Errorf("offset = %v, want -2 (centering entry 1)", ins.Offset)
	}
}

func TestControllerManualOverride(t *testing.T) {
	t.Run("scroll engages override and deadline returns to auto", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)
		c.Tick(0)

		if !c.Scroll(-3) {
			t.Fatal("scroll on non-empty timeline should engage override")
		}
		if c.Mode() != ManualOverride {
			t.Fatalf("mode = %v, want ManualOverride", c.Mode())
		}

		// Ticks inside the hold leave the user's offset alone.
		clk.Advance(2 * time.Second)
		ins := c.Tick(20)
		if c.Mode() != ManualOverride || ins.Changed {
			t.Error("tick inside hold must not resume auto sync")
		}
		if ins.Offset != -3 {
			t.Errorf("offset = %v, want manual -3", ins.Offset)
		}

		// The deadline elapses; the same tick resumes auto processing.
		clk.Advance(time.Second + time.Millisecond)
		ins = c.Tick(20)
		if c.Mode() != Auto {
			t.Fatalf("mode = %v, want Auto after deadline", c.Mode())
		}
		if ins.Active != 2 || !ins.Changed {
			t.Errorf("resumed tick: got %+v, want active 2 changed", ins)
		}
	})

	t.Run("each input restarts the deadline", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)

		c.Scroll(-1)
		clk.Advance(2 * time.Second)
		c.Scroll(-1)
		clk.Advance(2 * time.Second)

		c.Tick(0)
		if c.Mode() != ManualOverride {
			t.Error("override expired despite input 2s ago")
		}
	})

	t.Run("offset clamped to scrollable range", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)

		c.Scroll(-100)
		// Content 16, viewport 10: offsets live in [-6, 0].
		if got := c.Offset(); got != -6 {
			t.Errorf("offset = %v, want clamped -6", got)
		}

		c.Scroll(100)
		if got := c.Offset(); got != 0 {
			t.Errorf("offset = %v, want clamped 0", got)
		}
	})

	t.Run("short content pins offset to zero", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)
		c.SetGeometry(Geometry{ViewportHeight: 40, PanelHeight: 2, EntryHeights: []float64{4, 4, 4, 4}})

		c.Scroll(-5)
		if got := c.Offset(); got != 0 {
			t.Errorf("offset = %v, want pinned 0", got)
		}
	})

	t.Run("empty timeline makes scrolling a no-op", func(t *testing.T) {
		clk := newManualClock()
		c := NewController(3 * time.Second)
		c.SetNow(clk.Now)
		c.SetTimeline(lyrics.Timeline{})

		if c.Scroll(-3) {
			t.Error("scroll on empty timeline should not engage override")
		}
		if c.Mode() != Auto {
			t.Errorf("mode = %v, want Auto", c.Mode())
		}
	})
}

func TestControllerTarget(t *testing.T) {
	clk := newManualClock()
	c := newTestController(clk)

	// Offset -6 puts entry 2 (center 10) at screen 4, the visible center.
	c.Scroll(-6)
	if got := c.Target(); got != 2 {
		t.Errorf("target = %d, want 2", got)
	}

	t.Run("zero-height entries never targeted", func(t *testing.T) {
		c.SetGeometry(Geometry{ViewportHeight: 10, PanelHeight: 2, EntryHeights: []float64{4, 0, 4, 4}})
		c.Scroll(0)
		if got := c.Target(); got == 1 {
			t.Error("unrendered entry picked as target")
		}
	})
}

func TestPlayFromTarget(t *testing.T) {
	clk := newManualClock()
	c := newTestController(clk)

	c.Scroll(-6)
	seconds, ok := c.PlayFromTarget()
	if !ok {
		t.Fatal("expected a target to resolve")
	}
	if seconds != 20 {
		t.Errorf("seek = %v, want 20 (entry 2)", seconds)
	}
	if c.Mode() != Auto {
		t.Errorf("mode = %v, want forced Auto", c.Mode())
	}
	if c.Target() != -1 {
		t.Errorf("target = %d, want cleared", c.Target())
	}

	t.Run("falls back to active entry in auto", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)
		c.Tick(10)

		seconds, ok := c.PlayFromTarget()
		if !ok || seconds != 10 {
			t.Errorf("got (%v, %v), want (10, true)", seconds, ok)
		}
	})

	t.Run("nothing centered", func(t *testing.T) {
		clk := newManualClock()
		c := newTestController(clk)

		if _, ok := c.PlayFromTarget(); ok {
			t.Error("expected no target before any tick or input")
		}
	})
}

func TestSetTimelineResets(t *testing.T) {
	clk := newManualClock()
	c := newTestController(clk)

	c.Scroll(-6)
	c.SetTimeline(testTimeline())

	if c.Mode() != Auto {
		t.Errorf("mode = %v, want Auto after reload", c.Mode())
	}
	if c.Target() != -1 {
		t.Errorf("target = %d, want cleared", c.Target())
	}
	if c.Offset() != 0 {
		t.Errorf("offset = %v, want reset", c.Offset())
	}
}

func TestSetGeometryReclamps(t *testing.T) {
	clk := newManualClock()
	c := newTestController(clk)

	c.Scroll(-6)
	c.SetGeometry(Geometry{ViewportHeight: 16, PanelHeight: 0, EntryHeights: []float64{4, 4, 4, 4}})

	if got := c.Offset(); got != 0 {
		t.Errorf("offset = %v, want re-clamped to 0", got)
	}
}
