package lyrics

import (
	"regexp"
	"strconv"
	"strings"
)

// vttCue matches range-timestamp lines with an optional hour component,
// e.g. "00:00:01.000 --> 00:00:02.000" or "01:02.500 --> 01:04.000".
var vttCue = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d{1,2}):)?(\d{1,2}):(\d{2})\.(\d{3})`)

// ParseVTT parses a range-timestamp lyric payload.
//
// Only the start time of each cue is kept; the next non-empty line that is
// not itself a cue becomes the entry's single text. A cue not followed by a
// usable text line is ignored, as are the WEBVTT header and NOTE blocks.
func ParseVTT(raw string) Timeline {
	lines := strings.Split(raw, "\n")

	var entries []Entry
	for i := 0; i < len(lines); i++ {
		m := vttCue.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}

		text, next := cueText(lines, i+1)
		if text == "" {
			continue
		}

		entries = append(entries, Entry{Time: vttSeconds(m[1], m[2], m[3], m[4]), Texts: []string{text}})
		i = next
	}

	return sortAndMerge(entries)
}

// cueText returns the first usable text line at or after index start, along
// with its index. It stops without consuming anything when the next
// non-empty line is another cue.
func cueText(lines []string, start int) (string, int) {
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if vttCue.MatchString(line) {
			// Let the outer loop re-examine this cue.
			return "", i - 1
		}
		if strings.HasPrefix(line, "WEBVTT") || strings.HasPrefix(line, "NOTE") {
			continue
		}
		return line, i
	}
	return "", len(lines)
}

// vttSeconds converts captured hour/minute/second/millisecond digits to
// seconds. Hours default to 0 when absent.
func vttSeconds(hour, min, sec, ms string) float64 {
	hours := 0
	if hour != "" {
		hours, _ = strconv.Atoi(hour)
	}
	minutes, _ := strconv.Atoi(min)
	seconds, _ := strconv.Atoi(sec)
	millis, _ := strconv.Atoi(ms)

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}
