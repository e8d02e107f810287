package lyrics

import (
	"errors"
	"testing"

	"github.com/desertthunder/vtx/internal/shared"
	tu "github.com/desertthunder/vtx/internal/testing"
)

func TestLoadFile(t *testing.T) {
	t.Run("lrc by extension", func(t *testing.T) {
		path := tu.TempFile(t, "song.lrc", "[00:05.00]first\n[00:10.00]second\n")

		timeline, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if len(timeline) != 2 || timeline[0].Time != 5 {
			t.Errorf("timeline = %+v", timeline)
		}
	})

	t.Run("vtt by extension", func(t *testing.T) {
		path := tu.TempFile(t, "song.vtt", "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nhi\n")

		timeline, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if len(timeline) != 1 || timeline[0].Time != 1 {
			t.Errorf("timeline = %+v", timeline)
		}
	})

	t.Run("unknown extension tries both formats", func(t *testing.T) {
		path := tu.TempFile(t, "song.txt", "00:00:01.000 --> 00:00:02.000\nhi\n\n00:00:03.000 --> 00:00:04.000\nthere\n")

		timeline, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if len(timeline) != 2 {
			t.Errorf("got %d entries, want 2", len(timeline))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(t.TempDir() + "/absent.lrc"); !errors.Is(err, shared.ErrLyricsNotFound) {
			t.Errorf("err = %v, want ErrLyricsNotFound", err)
		}
	})
}
