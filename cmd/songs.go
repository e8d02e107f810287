package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/vtx/internal/models"
	"github.com/desertthunder/vtx/internal/repositories"
	"github.com/desertthunder/vtx/internal/shared"
	"github.com/urfave/cli/v3"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".wav":  true,
	".m4a":  true,
}

var lyricExtensions = []string{".lrc", ".vtt"}

// SongsScan walks the media directory and records new songs, pairing each
// with a sibling lyric file when one exists.
func (r *Runner) SongsScan(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSongRepository(db)
	mediaDir := r.config.Player.MediaDir

	r.logger.Info("scanning media directory", "dir", mediaDir)

	var added, seen int
	err = filepath.WalkDir(mediaDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !audioExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		seen++

		if _, err := repo.GetByMediaPath(path); err == nil {
			return nil
		} else if !errors.Is(err, shared.ErrSongNotFound) {
			return err
		}

		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		song := models.NewSong(title, path, 0)
		if lyric := siblingLyric(path); lyric != "" {
			song.SetLyricPath(lyric)
		}

		if err := repo.Create(song); err != nil {
			return fmt.Errorf("failed to record %s: %w", path, err)
		}
		added++
		r.logger.Debug("recorded song", "title", title, "path", path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	r.writePlain("Scanned %d songs, added %d\n", seen, added)
	return nil
}

// SongsList prints the library.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSongRepository(db)

	criteria := map[string]any{}
	if cmd.Bool("with-lyrics") {
		criteria["has_lyrics"] = true
	}

	songs, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if cmd.Bool("json") {
		infos := make([]models.SongInfo, len(songs))
		for i, song := range songs {
			infos[i] = song.Info()
		}
		return r.writeJSON(infos, cmd.Bool("pretty"))
	}

	if len(songs) == 0 {
		r.writePlain("No songs in the library. Run 'vtx songs scan' first.\n")
		return nil
	}

	for _, song := range songs {
		marker := " "
		if song.LyricPath() != "" {
			marker = "*"
		}
		r.writePlain("%s %s\n", marker, song.Title())
	}
	r.writePlainln("%d songs (* = lyrics available)", len(songs))
	return nil
}

// siblingLyric looks for a lyric file next to the media file.
func siblingLyric(mediaPath string) string {
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	for _, ext := range lyricExtensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
