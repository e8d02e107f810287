package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Lyric errors
	ErrLyricsNotFound = fmt.Errorf("lyrics not found")

	// Backend and transport errors
	ErrNetworkFailure  = fmt.Errorf("backend request failed")
	ErrRequestRejected = fmt.Errorf("backend rejected request")

	// Task errors
	ErrTaskFailed = fmt.Errorf("task reported failure")

	// Library errors
	ErrSongNotFound = fmt.Errorf("song not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
