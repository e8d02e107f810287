// Package lyrics implements the time-coded lyric model shared by the sync
// tick and the view layer.
//
// A [Timeline] is an immutable, ascending sequence of [Entry] values built by
// one of two parsers: [ParseLRC] for line-timestamp sources and [ParseVTT]
// for range-timestamp sources. Parsing is total: malformed lines are skipped,
// never reported as errors. Timelines are rebuilt wholesale on every fetch
// and swapped in as a single reference so a sync tick never observes a
// half-built sequence.
package lyrics
