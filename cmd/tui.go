package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vtx/internal/channel"
	"github.com/desertthunder/vtx/internal/playback"
	"github.com/desertthunder/vtx/internal/repositories"
	"github.com/desertthunder/vtx/internal/shared"
	"github.com/desertthunder/vtx/internal/tasks"
	"github.com/desertthunder/vtx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Play launches the interactive lyric player.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/vtx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewSongRepository(db)
	tracker := tasks.NewTracker(r.logger)
	clock := playback.NewClock(0)

	model := ui.NewModel(ctx, clock, repo, tracker, r.taskClient, r.config.Player.MediaDir, r.overrideHold())
	p := tea.NewProgram(model, tea.WithAltScreen())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Animation frames flow only while the clock is playing, matching the
	// transport's notification behavior.
	ticker := playback.NewTicker(clock, r.frameInterval(), func(position float64) {
		p.Send(ui.FrameMsg{Position: position})
	})
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-runCtx.Done():
				return
			case u := <-tracker.Updates():
				p.Send(ui.TaskMsg{Update: u})
			}
		}
	}()

	push := channel.NewPushChannel(r.config.Backend.PushURL, r.reconnectDelay(), tracker.Handle, r.logger)
	go push.Run(runCtx)
	defer push.Close()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
