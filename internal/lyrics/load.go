package lyrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/vtx/internal/shared"
)

// LoadFile reads a lyric file and parses it by extension. Files with
// unknown extensions are tried as both formats and the richer result wins.
func LoadFile(path string) (Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", shared.ErrLyricsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read lyric file: %w", err)
	}

	raw := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lrc":
		return ParseLRC(raw), nil
	case ".vtt":
		return ParseVTT(raw), nil
	}

	lrc := ParseLRC(raw)
	vtt := ParseVTT(raw)
	if len(vtt) > len(lrc) {
		return vtt, nil
	}
	return lrc, nil
}
