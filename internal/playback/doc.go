// Package playback defines the interface consumed from the audio playback
// transport and the scheduled-tick abstraction that drives lyric sync.
//
// The transport itself (decoding, output) is an external collaborator; this
// package models only the clock surface the client needs: position, duration,
// rate, and play/pause/end notifications. [Clock] is a reference
// implementation advancing a position against wall time, used by the TUI and
// by tests when no real transport is wired in.
package playback
