package tasks

import (
	"fmt"
	"net/url"
	"strings"
)

var cacheDirs = []string{"cache/subtitles/", "cache/lyrics/"}

// NormalizePath collapses the many spellings of a cached artifact's path
// into one canonical, cache-relative form. Client-side selections and
// server-reported paths for the same file must normalize identically.
func NormalizePath(raw string) string {
	p, err := url.QueryUnescape(raw)
	if err != nil {
		p = raw
	}

	p = strings.ReplaceAll(p, "\\", "/")

	if i := strings.Index(p, "?"); i >= 0 {
		p = p[:i]
	}

	lower := strings.ToLower(p)
	for _, dir := range cacheDirs {
		if i := strings.Index(lower, dir); i >= 0 {
			return p[i:]
		}
	}

	return strings.TrimPrefix(p, "/")
}

// RoutingKey derives the stable identifier used to match an inbound push
// message to the task record it belongs to.
func RoutingKey(label, path string) string {
	return fmt.Sprintf("task-%s-%s", label, NormalizePath(path))
}
