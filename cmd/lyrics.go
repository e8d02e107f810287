package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/vtx/internal/lyrics"
	"github.com/desertthunder/vtx/internal/shared"
	"github.com/urfave/cli/v3"
)

// LyricsParse parses a lyric file and prints its timeline.
func (r *Runner) LyricsParse(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: lyric file path", shared.ErrMissingArgument)
	}

	timeline, err := lyrics.LoadFile(path)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(timeline, cmd.Bool("pretty"))
	}

	for _, entry := range timeline {
		mins := int(entry.Time) / 60
		secs := entry.Time - float64(mins*60)
		r.writePlain("[%02d:%05.2f] %s\n", mins, secs, strings.Join(entry.Texts, " / "))
	}
	r.writePlainln("%d entries", len(timeline))
	return nil
}
