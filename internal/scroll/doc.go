// Package scroll implements the controller deciding which lyric entry is
// highlighted and where the lyric view sits.
//
// The controller is a two-state machine. In Auto it follows the playback
// position each tick, centering the active entry. Any user scroll input
// moves it to ManualOverride, where the user's offset wins until a fixed
// inactivity hold elapses with no further input, at which point automatic
// sync resumes immediately.
//
// All geometry is pure data ([Geometry]); the controller never touches a
// presentation surface. Handlers are expected to run to completion before
// the next tick or input arrives, so the controller carries no lock.
package scroll
