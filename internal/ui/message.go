package ui

import (
	"github.com/desertthunder/vtx/internal/lyrics"
	"github.com/desertthunder/vtx/internal/models"
	"github.com/desertthunder/vtx/internal/tasks"
)

// FrameMsg is one animation tick; carries the playback position read from
// the engine at tick time. Sent into the program by the runner's ticker.
type FrameMsg struct {
	Position float64
}

// TaskMsg wraps a tracker update for the view layer. Sent into the
// program by the runner's update-forwarding goroutine.
type TaskMsg struct {
	Update tasks.Update
}

// songsLoadedMsg is emitted once the library has been read.
type songsLoadedMsg struct {
	songs []*models.Song
	err   error
}

// lyricsLoadedMsg is emitted when a lyric file has been parsed; the new
// timeline replaces the old one in a single assignment.
type lyricsLoadedMsg struct {
	timeline lyrics.Timeline
	path     string
	err      error
}

// taskStartedMsg reports the outcome of a task-initiation request.
type taskStartedMsg struct {
	kind tasks.Kind
	err  error
}
