package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vtx/internal/channel"
	"github.com/desertthunder/vtx/internal/shared"
	"github.com/desertthunder/vtx/internal/tasks"
	"github.com/urfave/cli/v3"
)

// TaskTranslate runs a translate task against the backend.
func (r *Runner) TaskTranslate(ctx context.Context, cmd *cli.Command) error {
	return r.runTask(ctx, cmd, tasks.Translate)
}

// TaskCorrect runs a correct task against the backend.
func (r *Runner) TaskCorrect(ctx context.Context, cmd *cli.Command) error {
	return r.runTask(ctx, cmd, tasks.Correct)
}

// TaskTranscribe generates subtitles for a media file.
func (r *Runner) TaskTranscribe(ctx context.Context, cmd *cli.Command) error {
	return r.runTask(ctx, cmd, tasks.Transcribe)
}

// TaskGlossary generates a glossary from a subtitle file.
func (r *Runner) TaskGlossary(ctx context.Context, cmd *cli.Command) error {
	return r.runTask(ctx, cmd, tasks.Glossary)
}

// TaskCancel fires a cancellation request. The backend confirms over the
// push channel, so a clean exit here only means the request was accepted.
func (r *Runner) TaskCancel(ctx context.Context, cmd *cli.Command) error {
	label := cmd.StringArg("task")
	path := cmd.StringArg("file")
	if label == "" || path == "" {
		return fmt.Errorf("%w: task label and file path", shared.ErrMissingArgument)
	}

	kind, ok := tasks.KindFromLabel(label)
	if !ok {
		return fmt.Errorf("%w: unknown task %q", shared.ErrInvalidArgument, label)
	}

	if err := r.taskClient.Cancel(ctx, kind, path); err != nil {
		return err
	}
	r.writePlain("Cancellation requested for %s %s\n", label, path)
	return nil
}

// runTask fires the request and follows progress over the push channel
// until the task reaches a terminal state.
func (r *Runner) runTask(ctx context.Context, cmd *cli.Command, kind tasks.Kind) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: file path", shared.ErrMissingArgument)
	}

	if cmd.Bool("detach") {
		if err := r.taskClient.Start(ctx, kind, path); err != nil {
			return err
		}
		r.writePlain("%s accepted for %s\n", kind.Label(), path)
		return nil
	}

	tracker := tasks.NewTracker(r.logger)
	if _, err := tracker.Begin(kind, path); err != nil {
		return err
	}

	pushCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	push := channel.NewPushChannel(r.config.Backend.PushURL, r.reconnectDelay(), tracker.Handle, r.logger)
	go push.Run(pushCtx)
	defer push.Close()

	if err := r.taskClient.Start(ctx, kind, path); err != nil {
		return err
	}
	r.logger.Info("task accepted", "task", kind.Label(), "file", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u := <-tracker.Updates():
			switch u.Status {
			case tasks.StatusCompleted:
				r.writePlain("\n%s complete", kind.Label())
				if u.Artifact != "" {
					r.writePlain(": %s", u.Artifact)
				}
				r.writePlain("\n")
				return nil
			case tasks.StatusCancelled:
				r.writePlainln("%s cancelled", kind.Label())
				return nil
			case tasks.StatusFailed:
				return fmt.Errorf("%w: %s", shared.ErrTaskFailed, u.Text)
			default:
				r.writePlain("\r%s %s        ", kind.Label(), u.Text)
			}
		}
	}
}
