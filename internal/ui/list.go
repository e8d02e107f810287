package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/vtx/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song *models.Song
}

func (i songItem) FilterValue() string { return i.song.Title() }
func (i songItem) Title() string       { return i.song.Title() }
func (i songItem) Description() string {
	mins := int(i.song.Duration()) / 60
	secs := int(i.song.Duration()) % 60
	desc := fmt.Sprintf("%d:%02d", mins, secs)
	if i.song.LyricPath() != "" {
		desc = fmt.Sprintf("%s • lyrics", desc)
	}
	return desc
}
