package tasks

import (
	"io"
	"testing"

	"github.com/desertthunder/vtx/internal/shared"
)

func newTestTracker() *Tracker {
	return NewTracker(shared.NewLogger(io.Discard))
}

func drain(t *testing.T, tr *Tracker) []Update {
	t.Helper()
	var out []Update
	for {
		select {
		case u := <-tr.Updates():
			out = append(out, u)
		default:
			return out
		}
	}
}

func TestTrackerBegin(t *testing.T) {
	tr := newTestTracker()

	key, err := tr.Begin(Translate, "/media/x/cache/subtitles/a.vtt")
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if want := "task-translate-cache/subtitles/a.vtt"; key != want {
		t.Errorf("key = %q, want %q", key, want)
	}

	if _, err := tr.Begin(Translate, `D:\other\cache\subtitles\a.vtt`); err == nil {
		t.Error("expected duplicate Begin to fail")
	}

	active := tr.Active()
	if len(active) != 1 || active[0].Status != StatusPending {
		t.Fatalf("unexpected active set: %+v", active)
	}
	if active[0].Path != "/media/x/cache/subtitles/a.vtt" {
		t.Errorf("path = %q, want the path passed to Begin", active[0].Path)
	}
}

// Cancellation identifies a task by the path it was started on, so the
// active snapshot must keep carrying that path even when the view has
// since moved to a different song.
func TestActiveCarriesOriginatingPath(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Translate, "/media/a/cache/subtitles/a.vtt")
	drain(t, tr)

	active := tr.Active()
	if len(active) != 1 {
		t.Fatalf("got %d active records", len(active))
	}
	if active[0].Path != "/media/a/cache/subtitles/a.vtt" {
		t.Errorf("path = %q, want originating path", active[0].Path)
	}

	tr.Handle(Message{Type: TypeProgress, Task: "translate", VTTFile: "/media/a/cache/subtitles/a.vtt", Current: 1, Total: 2})
	updates := drain(t, tr)
	if len(updates) != 1 || updates[0].Path != "/media/a/cache/subtitles/a.vtt" {
		t.Fatalf("progress update lost the originating path: %+v", updates)
	}
}

func TestTrackerProgress(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Translate, "cache/subtitles/a.vtt")
	drain(t, tr)

	tr.Handle(Message{Type: TypeProgress, Task: "translate", VTTFile: "cache/subtitles/a.vtt", Current: 3, Total: 10})

	updates := drain(t, tr)
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	u := updates[0]
	if u.Status != StatusRunning {
		t.Errorf("status = %v, want running", u.Status)
	}
	if u.Percent != 30 {
		t.Errorf("percent = %v, want 30", u.Percent)
	}
	if u.Indeterminate {
		t.Error("expected determinate progress")
	}
	if u.Text != "30%" {
		t.Errorf("text = %q, want 30%%", u.Text)
	}
}

func TestTrackerProgressRounds(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Correct, "cache/subtitles/a.vtt")
	drain(t, tr)

	tr.Handle(Message{
		Type: TypeProgress, Task: "correct", VTTFile: "cache/subtitles/a.vtt",
		Current: 1, Total: 4, CurrentRound: 2, TotalRounds: 3,
	})

	updates := drain(t, tr)
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	if want := "25% (round 2/3)"; updates[0].Text != want {
		t.Errorf("text = %q, want %q", updates[0].Text, want)
	}
}

func TestTrackerIndeterminateProgress(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Glossary, "cache/subtitles/a.vtt")
	drain(t, tr)

	tr.Handle(Message{Type: TypeProgress, Task: "glossary", VTTFile: "cache/subtitles/a.vtt"})

	updates := drain(t, tr)
	if len(updates) != 1 || !updates[0].Indeterminate {
		t.Fatalf("expected indeterminate update, got %+v", updates)
	}
}

func TestTrackerComplete(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Translate, "cache/subtitles/a.vtt")
	drain(t, tr)

	tr.Handle(Message{
		Type: TypeComplete, Task: "translate", VTTFile: "cache/subtitles/a.vtt",
		ProcessedFile: "cache/subtitles/a.translated.vtt",
	})

	if len(tr.Active()) != 0 {
		t.Error("expected registry to be empty after complete")
	}
	updates := drain(t, tr)
	if len(updates) != 1 || updates[0].Status != StatusCompleted {
		t.Fatalf("expected completed update, got %+v", updates)
	}
	if updates[0].Artifact != "cache/subtitles/a.translated.vtt" {
		t.Errorf("artifact = %q", updates[0].Artifact)
	}

	// Redelivered terminal message is a silent no-op.
	tr.Handle(Message{
		Type: TypeComplete, Task: "translate", VTTFile: "cache/subtitles/a.vtt",
		ProcessedFile: "cache/subtitles/a.translated.vtt",
	})
	if got := drain(t, tr); len(got) != 0 {
		t.Errorf("duplicate complete emitted %d updates", len(got))
	}
}

func TestTrackerCancelledAndError(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Translate, "cache/subtitles/a.vtt")
	tr.Begin(Correct, "cache/subtitles/b.vtt")
	drain(t, tr)

	tr.Handle(Message{Type: TypeCancelled, Task: "translate", VTTFile: "cache/subtitles/a.vtt"})
	tr.Handle(Message{Type: TypeError, Task: "correct", VTTFile: "cache/subtitles/b.vtt", Text: "model unavailable"})

	updates := drain(t, tr)
	if len(updates) != 2 {
		t.Fatalf("got %d updates, want 2", len(updates))
	}
	if updates[0].Status != StatusCancelled {
		t.Errorf("first status = %v, want cancelled", updates[0].Status)
	}
	if updates[1].Status != StatusFailed || updates[1].Text != "model unavailable" {
		t.Errorf("second update = %+v", updates[1])
	}
	if len(tr.Active()) != 0 {
		t.Error("expected registry to be empty")
	}
}

func TestTrackerFallbackMatch(t *testing.T) {
	tr := newTestTracker()
	tr.Begin(Translate, "cache/subtitles/a.vtt")
	drain(t, tr)

	// Server reports a path the key derivation cannot collapse; the
	// label scan still finds the record.
	tr.Handle(Message{Type: TypeProgress, Task: "translate", VTTFile: "tmp/work/a.vtt", Current: 1, Total: 2})

	updates := drain(t, tr)
	if len(updates) != 1 || updates[0].Percent != 50 {
		t.Fatalf("fallback match failed: %+v", updates)
	}
}

func TestTrackerUnmatchedMessage(t *testing.T) {
	tr := newTestTracker()

	tr.Handle(Message{Type: TypeComplete, Task: "translate", VTTFile: "cache/subtitles/ghost.vtt"})
	tr.Handle(Message{Type: TypeProgress})

	if got := drain(t, tr); len(got) != 0 {
		t.Errorf("unmatched messages emitted %d updates", len(got))
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusFailed} {
		if !s.Terminal() {
			t.Errorf("%v should be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusRunning} {
		if s.Terminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
}
