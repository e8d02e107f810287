package lyrics

import (
	"sort"
)

// Entry is one timestamp plus the text(s) active at that timestamp.
// Multiple texts represent simultaneous lines (e.g., bilingual pairs)
// sharing one timestamp, in insertion order from the source file.
type Entry struct {
	Time  float64  // Seconds from the start of the track
	Texts []string // Simultaneous lines for this timestamp
}

// Timeline is the full ordered set of lyric entries for one track.
// Invariant: ascending Time with no two entries at the same time.
type Timeline []Entry

// ActiveIndex returns the greatest index i with T[i].Time <= position,
// or -1 when position precedes the first entry or the timeline is empty.
//
// For a fixed timeline the result is non-decreasing under monotonically
// increasing position, so repeated calls during playback never step
// backward unless the caller seeks backward.
func (t Timeline) ActiveIndex(position float64) int {
	return sort.Search(len(t), func(i int) bool {
		return t[i].Time > position
	}) - 1
}

// sortAndMerge sorts entries ascending by time and collapses entries with
// identical timestamps into one entry with concatenated texts.
func sortAndMerge(entries []Entry) Timeline {
	if len(entries) == 0 {
		return Timeline{}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	merged := make(Timeline, 0, len(entries))
	for _, e := range entries {
		if n := len(merged); n > 0 && merged[n-1].Time == e.Time {
			merged[n-1].Texts = append(merged[n-1].Texts, e.Texts...)
			continue
		}
		merged = append(merged, e)
	}

	return merged
}
