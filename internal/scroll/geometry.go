package scroll

import "math"

// Geometry describes the rendered lyric view: per-entry heights in content
// order, the viewport height, and the height of any panel overlaid on the
// bottom of the viewport. An entry with zero height is not rendered and is
// never picked as a target.
type Geometry struct {
	ViewportHeight float64
	PanelHeight    float64
	EntryHeights   []float64
}

// ContentHeight is the total height of all rendered entries.
func (g Geometry) ContentHeight() float64 {
	var sum float64
	for _, h := range g.EntryHeights {
		sum += h
	}
	return sum
}

// EntryTop returns the content-space top of entry i.
func (g Geometry) EntryTop(i int) float64 {
	var top float64
	for j := 0; j < i && j < len(g.EntryHeights); j++ {
		top += g.EntryHeights[j]
	}
	return top
}

// EntryCenter returns the content-space vertical center of entry i.
func (g Geometry) EntryCenter(i int) float64 {
	if i < 0 || i >= len(g.EntryHeights) {
		return 0
	}
	return g.EntryTop(i) + g.EntryHeights[i]/2
}

// visibleCenter is the vertical center of the lyric area, i.e. the viewport
// minus the overlaid panel.
func (g Geometry) visibleCenter() float64 {
	return (g.ViewportHeight - g.PanelHeight) / 2
}

// clampOffset restricts a view offset to [-(content-viewport), 0], pinning
// to 0 when the content is shorter than the viewport.
func (g Geometry) clampOffset(offset float64) float64 {
	min := -(g.ContentHeight() - g.ViewportHeight)
	if min > 0 {
		min = 0
	}
	return math.Min(0, math.Max(min, offset))
}

// nearestEntry returns the rendered entry whose center is closest to the
// visible center at the given offset, or -1 when nothing is rendered.
func (g Geometry) nearestEntry(offset float64) int {
	best := -1
	bestDist := math.Inf(1)

	for i, h := range g.EntryHeights {
		if h <= 0 {
			continue
		}
		dist := math.Abs(g.EntryCenter(i) + offset - g.visibleCenter())
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return best
}
