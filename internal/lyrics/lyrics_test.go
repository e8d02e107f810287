package lyrics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseLRC(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want Timeline
	}{
		{
			name: "single tag",
			raw:  "[01:02.50]hello",
			want: Timeline{{Time: 62.5, Texts: []string{"hello"}}},
		},
		{
			name: "three digit fraction",
			raw:  "[00:01.500]line",
			want: Timeline{{Time: 1.5, Texts: []string{"line"}}},
		},
		{
			name: "multiple tags on one line",
			raw:  "[00:10.00][00:30.00]chorus",
			want: Timeline{
				{Time: 10, Texts: []string{"chorus"}},
				{Time: 30, Texts: []string{"chorus"}},
			},
		},
		{
			name: "equal timestamps merge",
			raw:  "[00:05.00]original\n[00:05.00]translation",
			want: Timeline{{Time: 5, Texts: []string{"original", "translation"}}},
		},
		{
			name: "unsorted input sorted",
			raw:  "[00:20.00]second\n[00:10.00]first",
			want: Timeline{
				{Time: 10, Texts: []string{"first"}},
				{Time: 20, Texts: []string{"second"}},
			},
		},
		{
			name: "lines without tags dropped",
			raw:  "just a header\n[00:01.00]kept",
			want: Timeline{{Time: 1, Texts: []string{"kept"}}},
		},
		{
			name: "tag without text dropped",
			raw:  "[00:01.00]\n[00:02.00]   \n[00:03.00]kept",
			want: Timeline{{Time: 3, Texts: []string{"kept"}}},
		},
		{
			name: "malformed tags skipped",
			raw:  "[xx:01.00]bad\n[00:99.00]bad seconds\n[00:04.00]good",
			want: Timeline{{Time: 4, Texts: []string{"good"}}},
		},
		{
			name: "empty input",
			raw:  "",
			want: Timeline{},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLRC(tt.raw)
			assertTimeline(t, got, tt.want)
		})
	}
}

func TestParseVTT(t *testing.T) {
	tc := []struct {
		name string
		raw  string
		want Timeline
	}{
		{
			name: "single cue",
			raw:  "00:00:01.000 --> 00:00:02.000\nhi",
			want: Timeline{{Time: 1, Texts: []string{"hi"}}},
		},
		{
			name: "cue without text ignored",
			raw:  "00:00:01.000 --> 00:00:02.000\nhi\n\n00:00:03.000 --> 00:00:04.000",
			want: Timeline{{Time: 1, Texts: []string{"hi"}}},
		},
		{
			name: "consecutive cues keep later text",
			raw:  "00:00:01.000 --> 00:00:02.000\n00:00:03.000 --> 00:00:04.000\nlate",
			want: Timeline{{Time: 3, Texts: []string{"late"}}},
		},
		{
			name: "hours optional",
			raw:  "01:01.500 --> 01:02.000\nshort form\n\n01:00:00.000 --> 01:00:01.000\nlong form",
			want: Timeline{
				{Time: 61.5, Texts: []string{"short form"}},
				{Time: 3600, Texts: []string{"long form"}},
			},
		},
		{
			name: "header skipped",
			raw:  "WEBVTT\n\n00:00:02.000 --> 00:00:03.000\nbody",
			want: Timeline{{Time: 2, Texts: []string{"body"}}},
		},
		{
			name: "same start merges",
			raw:  "00:00:02.000 --> 00:00:03.000\nfirst\n\n00:00:02.000 --> 00:00:04.000\nsecond",
			want: Timeline{{Time: 2, Texts: []string{"first", "second"}}},
		},
		{
			name: "empty input",
			raw:  "",
			want: Timeline{},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVTT(tt.raw)
			assertTimeline(t, got, tt.want)
		})
	}
}

func assertTimeline(t *testing.T, got, want Timeline) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if !almostEqual(got[i].Time, want[i].Time) {
			t.Errorf("entry %d: time = %v, want %v", i, got[i].Time, want[i].Time)
		}
		if len(got[i].Texts) != len(want[i].Texts) {
			t.Fatalf("entry %d: got %d texts, want %d", i, len(got[i].Texts), len(want[i].Texts))
		}
		for j := range want[i].Texts {
			if got[i].Texts[j] != want[i].Texts[j] {
				t.Errorf("entry %d text %d: got %q, want %q", i, j, got[i].Texts[j], want[i].Texts[j])
			}
		}
	}
}

func TestTimelineInvariant(t *testing.T) {
	// Both parsers must produce ascending timelines with unique timestamps.
	payloads := map[string]Timeline{
		"lrc": ParseLRC("[00:30.00]c\n[00:10.00]a\n[00:10.00]a2\n[00:20.00]b"),
		"vtt": ParseVTT("00:00:09.000 --> 00:00:10.000\nz\n\n00:00:03.000 --> 00:00:05.000\na\n\n00:00:03.000 --> 00:00:04.000\nb"),
	}

	for name, tl := range payloads {
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(tl); i++ {
				if tl[i].Time <= tl[i-1].Time {
					t.Errorf("timeline not strictly ascending at %d: %v then %v", i, tl[i-1].Time, tl[i].Time)
				}
			}
		})
	}
}

func TestActiveIndex(t *testing.T) {
	tl := Timeline{
		{Time: 1, Texts: []string{"a"}},
		{Time: 5, Texts: []string{"b"}},
		{Time: 9.5, Texts: []string{"c"}},
	}

	tc := []struct {
		position float64
		want     int
	}{
		{0, -1},
		{0.999, -1},
		{1, 0},
		{4.9, 0},
		{5, 1},
		{9.4, 1},
		{9.5, 2},
		{100, 2},
	}

	for _, tt := range tc {
		if got := tl.ActiveIndex(tt.position); got != tt.want {
			t.Errorf("ActiveIndex(%v) = %d, want %d", tt.position, got, tt.want)
		}
	}

	t.Run("empty timeline", func(t *testing.T) {
		if got := (Timeline{}).ActiveIndex(10); got != -1 {
			t.Errorf("ActiveIndex on empty timeline = %d, want -1", got)
		}
	})

	t.Run("monotone under increasing position", func(t *testing.T) {
		prev := -1
		for p := 0.0; p < 12; p += 0.25 {
			got := tl.ActiveIndex(p)
			if got < prev {
				t.Fatalf("ActiveIndex decreased from %d to %d at position %v", prev, got, p)
			}
			prev = got
		}
	})
}
