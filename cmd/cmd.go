// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand initializes the database and runs migrations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// playCommand launches the interactive player
func playCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "play",
		Aliases: []string{"tui"},
		Usage:   "Open the interactive lyric player",
		Action:  r.Play,
	}
}

// songsCommand handles library operations
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Media library operations",
		Commands: []*cli.Command{
			{
				Name:   "scan",
				Usage:  "Scan the media directory for songs",
				Action: r.SongsScan,
			},
			{
				Name:  "list",
				Usage: "List songs in the library",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.BoolFlag{
						Name:  "with-lyrics",
						Usage: "Only songs with a resolved lyric source",
					},
				},
				Action: r.SongsList,
			},
		},
	}
}

// lyricsCommand handles lyric file operations
func lyricsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lyrics",
		Usage: "Lyric file operations",
		Commands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "Parse a lyric file and print its timeline",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "file",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.LyricsParse,
			},
		},
	}
}

// tasksCommand handles backend subtitle-processing tasks
func tasksCommand(r *Runner) *cli.Command {
	taskFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "detach",
			Usage: "Fire the request without following progress",
		},
	}
	fileArg := []cli.Argument{
		&cli.StringArg{
			Name: "file",
		},
	}

	return &cli.Command{
		Name:  "tasks",
		Usage: "Run subtitle-processing tasks on the backend",
		Commands: []*cli.Command{
			{
				Name:      "translate",
				Usage:     "Translate a subtitle file",
				Arguments: fileArg,
				Flags:     taskFlags,
				Action:    r.TaskTranslate,
			},
			{
				Name:      "correct",
				Usage:     "Correct a subtitle file",
				Arguments: fileArg,
				Flags:     taskFlags,
				Action:    r.TaskCorrect,
			},
			{
				Name:      "transcribe",
				Usage:     "Generate subtitles for a media file",
				Arguments: fileArg,
				Flags:     taskFlags,
				Action:    r.TaskTranscribe,
			},
			{
				Name:      "glossary",
				Usage:     "Generate a glossary from a subtitle file",
				Arguments: fileArg,
				Flags:     taskFlags,
				Action:    r.TaskGlossary,
			},
			{
				Name:  "cancel",
				Usage: "Cancel a running task",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "task",
					},
					&cli.StringArg{
						Name: "file",
					},
				},
				Action: r.TaskCancel,
			},
		},
	}
}
