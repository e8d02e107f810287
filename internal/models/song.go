package models

import (
	"fmt"
	"time"
)

// Song is a persistent record for a song in the media library.
//
// The lyric path is empty until a lyric source has been resolved for the
// song; it is overwritten whenever a processing task produces a new artifact.
type Song struct {
	id        string
	sequence  int
	title     string
	mediaPath string
	lyricPath string
	duration  float64
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewSong creates a Song for a freshly scanned media file.
// ID and sequence are assigned by the repository on Create.
func NewSong(title, mediaPath string, duration float64) *Song {
	now := time.Now()
	return &Song{
		title:     title,
		mediaPath: mediaPath,
		duration:  duration,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreSong reconstructs a Song from persisted column values.
func RestoreSong(id string, sequence int, title, mediaPath, lyricPath string, duration float64, createdAt, updatedAt time.Time, deletedAt *time.Time) *Song {
	return &Song{
		id:        id,
		sequence:  sequence,
		title:     title,
		mediaPath: mediaPath,
		lyricPath: lyricPath,
		duration:  duration,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (s *Song) ID() string           { return s.id }
func (s *Song) Sequence() int        { return s.sequence }
func (s *Song) Title() string        { return s.title }
func (s *Song) MediaPath() string    { return s.mediaPath }
func (s *Song) LyricPath() string    { return s.lyricPath }
func (s *Song) Duration() float64    { return s.duration }
func (s *Song) CreatedAt() time.Time { return s.createdAt }
func (s *Song) UpdatedAt() time.Time { return s.updatedAt }

func (s *Song) SetID(id string)             { s.id = id }
func (s *Song) SetSequence(sequence int)    { s.sequence = sequence }
func (s *Song) SetUpdatedAt(t time.Time)    { s.updatedAt = t }
func (s *Song) SetLyricPath(path string)    { s.lyricPath = path }
func (s *Song) SetDuration(seconds float64) { s.duration = seconds }

// Validate checks that required fields are present.
func (s *Song) Validate() error {
	if s.id == "" {
		return fmt.Errorf("song ID is required")
	}
	if s.title == "" {
		return fmt.Errorf("song title is required")
	}
	if s.mediaPath == "" {
		return fmt.Errorf("song media path is required")
	}
	if s.duration < 0 {
		return fmt.Errorf("song duration cannot be negative")
	}
	return nil
}

// Info returns the DTO form of the song for the view layer.
func (s *Song) Info() SongInfo {
	return SongInfo{
		Title:     s.title,
		MediaPath: s.mediaPath,
		LyricPath: s.lyricPath,
	}
}
