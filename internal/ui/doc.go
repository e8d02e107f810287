// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for synchronized lyric playback:
//  1. [SongListView] : Browse the media library and pick a song
//  2. [PlayerView] : Follow the lyric timeline while the song plays
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Frame ticks, task updates and push-channel events arrive as messages sent
// into the program from outside, so the player keeps scrolling while tasks
// run in the background.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, space, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
