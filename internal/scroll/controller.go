package scroll

import (
	"time"

	"github.com/desertthunder/vtx/internal/lyrics"
)

// Mode enumerates the controller states.
type Mode int

const (
	Auto Mode = iota
	ManualOverride
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case ManualOverride:
		return "manual"
	default:
		return ""
	}
}

// DefaultHold is the inactivity window after the last manual input before
// automatic sync resumes.
const DefaultHold = 3 * time.Second

// Instruction tells the view what to render after a tick or input.
type Instruction struct {
	Active  int     // Entry to highlight, -1 for none
	Changed bool    // Active changed since the previous tick
	Offset  float64 // View offset to apply
	Animate bool    // Apply the offset with the short easing transition
}

// Controller combines the sync clock's position with user scroll input to
// decide the highlighted entry and the view offset.
type Controller struct {
	mode     Mode
	timeline lyrics.Timeline
	geom     Geometry

	offset   float64
	active   int
	target   int
	deadline time.Time

	hold time.Duration
	now  func() time.Time
}

// NewController creates a Controller in Auto with the given inactivity hold.
// A non-positive hold falls back to [DefaultHold].
func NewController(hold time.Duration) *Controller {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Controller{
		active: -1,
		target: -1,
		hold:   hold,
		now:    time.Now,
	}
}

// SetNow overrides the controller's clock, for tests.
func (c *Controller) SetNow(now func() time.Time) { c.now = now }

func (c *Controller) Mode() Mode      { return c.mode }
func (c *Controller) Offset() float64 { return c.offset }
func (c *Controller) Active() int     { return c.active }
func (c *Controller) Target() int     { return c.target }

// SetTimeline swaps in a new timeline. Switching songs or reloading lyrics
// always forces Auto and clears the target marker.
func (c *Controller) SetTimeline(t lyrics.Timeline) {
	c.timeline = t
	c.mode = Auto
	c.active = -1
	c.target = -1
	c.offset = 0
	c.deadline = time.Time{}
}

// SetGeometry updates the rendered layout. The current offset is re-clamped
// so a shrinking view cannot leave latent scroll.
func (c *Controller) SetGeometry(g Geometry) {
	c.geom = g
	c.offset = g.clampOffset(c.offset)
}

// Tick processes one sync frame at the given playback position.
//
// In ManualOverride the tick only checks the inactivity deadline; once it
// has elapsed automatic processing resumes in the same tick, with no
// debounce.
func (c *Controller) Tick(position float64) Instruction {
	if c.mode == ManualOverride {
		if c.now().Before(c.deadline) {
			return Instruction{Active: c.active, Offset: c.offset}
		}
		c.mode = Auto
		c.target = -1
	}

	idx := c.timeline.ActiveIndex(position)
	changed := idx != c.active
	c.active = idx

	if changed && idx >= 0 {
		c.offset = c.geom.clampOffset(c.geom.visibleCenter() - c.geom.EntryCenter(idx))
	}

	return Instruction{Active: idx, Changed: changed, Offset: c.offset, Animate: changed && idx >= 0}
}

// Scroll applies one user input of delta view units. It reports whether the
// input engaged (or extended) the manual override; an empty timeline makes
// scrolling a no-op.
func (c *Controller) Scroll(delta float64) bool {
	if len(c.timeline) == 0 {
		return false
	}

	// Entering override captures the current offset as the starting point;
	// every input restarts the inactivity deadline.
	c.mode = ManualOverride
	c.deadline = c.now().Add(c.hold)

	c.offset = c.geom.clampOffset(c.offset + delta)
	c.target = c.geom.nearestEntry(c.offset)

	return true
}

// PlayFromTarget resolves the centered entry's time for an explicit
// "play from here" action and forces the controller back to Auto. The
// second return is false when no entry is centered.
func (c *Controller) PlayFromTarget() (float64, bool) {
	idx := c.target
	if idx < 0 {
		idx = c.active
	}

	c.mode = Auto
	c.target = -1
	c.deadline = time.Time{}

	if idx < 0 || idx >= len(c.timeline) {
		return 0, false
	}
	return c.timeline[idx].Time, true
}
