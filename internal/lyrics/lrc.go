package lyrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// lrcTimestamp matches inline tags of the form [mm:ss.ff] or [mm:ss.fff].
var lrcTimestamp = regexp.MustCompile(`\[(\d{1,3}):(\d{2})\.(\d{2,3})\]`)

// ParseLRC parses a line-timestamp lyric payload.
//
// Each physical line may carry zero or more inline timestamps followed by
// free text; a line with N timestamps contributes the same text to N
// entries, which lets one lyric line be tagged to every repeat of a chorus.
// Lines without a timestamp, and lines whose text is empty once the tags
// are stripped, are dropped.
func ParseLRC(raw string) Timeline {
	var entries []Entry

	for _, line := range strings.Split(raw, "\n") {
		matches := lrcTimestamp.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		text := strings.TrimSpace(lrcTimestamp.ReplaceAllString(line, ""))
		if text == "" {
			continue
		}

		for _, m := range matches {
			seconds, ok := lrcSeconds(m[1], m[2], m[3])
			if !ok {
				continue
			}
			entries = append(entries, Entry{Time: seconds, Texts: []string{text}})
		}
	}

	return sortAndMerge(entries)
}

// lrcSeconds converts captured minute/second/fraction digits to seconds,
// honoring the declared fractional precision.
func lrcSeconds(min, sec, frac string) (float64, bool) {
	minutes, err := strconv.Atoi(min)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(sec)
	if err != nil || seconds >= 60 {
		return 0, false
	}
	fraction, err := strconv.Atoi(frac)
	if err != nil {
		return 0, false
	}

	scale := math.Pow10(len(frac))
	return float64(minutes)*60 + float64(seconds) + float64(fraction)/scale, true
}
