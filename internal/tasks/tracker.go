package tasks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vtx/internal/shared"
)

// Status models the lifecycle of a tracked task.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusCancelled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// Record is one active task in the registry.
type Record struct {
	Key           string
	Kind          Kind
	Path          string
	Status        Status
	Percent       float64
	Indeterminate bool
	Round         int
	Rounds        int
	Text          string
	Artifact      string
}

// Tracker is the in-memory registry of active tasks, keyed by routing key.
// Inbound push messages mutate it through Handle; terminal messages remove
// the record so the active set only ever holds pending or running work.
type Tracker struct {
	mu      sync.Mutex
	active  map[string]*Record
	updates chan Update
	logger  *log.Logger
}

func NewTracker(logger *log.Logger) *Tracker {
	return &Tracker{
		active:  make(map[string]*Record),
		updates: make(chan Update, 64),
		logger:  logger,
	}
}

// Updates returns the stream of record snapshots. Sends never block; a
// slow consumer loses intermediate updates, not terminal ones' effects.
func (t *Tracker) Updates() <-chan Update {
	return t.updates
}

// Begin registers a pending record for a task the client just requested
// and returns its routing key. Re-requesting an active task is rejected.
func (t *Tracker) Begin(kind Kind, path string) (string, error) {
	key := RoutingKey(kind.Label(), path)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.active[key]; ok {
		return "", fmt.Errorf("%w: %s already in progress", shared.ErrInvalidInput, key)
	}

	rec := &Record{
		Key:           key,
		Kind:          kind,
		Path:          path,
		Status:        StatusPending,
		Indeterminate: true,
		Text:          "waiting for backend",
	}
	t.active[key] = rec
	t.emit(rec.snapshot())
	return key, nil
}

// Active returns a snapshot of all non-terminal records.
func (t *Tracker) Active() []Update {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Update, 0, len(t.active))
	for _, rec := range t.active {
		out = append(out, rec.snapshot())
	}
	return out
}

// Handle applies one inbound push message to the registry. Messages that
// resolve to no record are dropped silently, which makes redelivered
// terminal messages harmless.
func (t *Tracker) Handle(msg Message) {
	t.mu.Lock()

	rec := t.resolve(msg)
	if rec == nil {
		t.mu.Unlock()
		t.logger.Debug("unmatched task message", "type", msg.Type, "task", msg.Task)
		return
	}

	switch msg.Type {
	case TypeProgress:
		if rec.Status.Terminal() {
			t.mu.Unlock()
			return
		}
		rec.Status = StatusRunning
		if msg.Total > 0 {
			rec.Percent = float64(msg.Current) / float64(msg.Total) * 100
			rec.Indeterminate = false
		} else {
			rec.Indeterminate = true
		}
		rec.Round = msg.CurrentRound
		rec.Rounds = msg.TotalRounds
		rec.Text = progressText(rec, msg)
		t.emit(rec.snapshot())
		t.mu.Unlock()

	case TypeComplete:
		rec.Status = StatusCompleted
		rec.Artifact = msg.ProcessedFile
		if rec.Artifact == "" {
			rec.Artifact = msg.GlossaryFile
		}
		rec.Percent = 100
		rec.Indeterminate = false
		rec.Text = "done"
		if msg.Text != "" {
			rec.Text = msg.Text
		}
		delete(t.active, rec.Key)
		t.emit(rec.snapshot())
		t.mu.Unlock()

	case TypeCancelled:
		rec.Status = StatusCancelled
		rec.Text = "cancelled"
		delete(t.active, rec.Key)
		t.emit(rec.snapshot())
		t.mu.Unlock()

	case TypeError:
		rec.Status = StatusFailed
		rec.Text = msg.Text
		delete(t.active, rec.Key)
		t.emit(rec.snapshot())
		t.mu.Unlock()

	default:
		t.mu.Unlock()
		t.logger.Warn("unknown task message type", "type", msg.Type)
	}
}

// resolve finds the record a message belongs to: exact routing key first,
// then a best-effort scan for any active key carrying the task label.
// Callers hold t.mu.
func (t *Tracker) resolve(msg Message) *Record {
	if msg.Task != "" && msg.VTTFile != "" {
		if rec, ok := t.active[RoutingKey(msg.Task, msg.VTTFile)]; ok {
			return rec
		}
	}
	if msg.Task == "" {
		return nil
	}
	token := "task-" + msg.Task + "-"
	for _, rec := range t.active {
		if strings.Contains(rec.Key, token) {
			return rec
		}
	}
	return nil
}

// emit pushes a snapshot without ever blocking the handler.
func (t *Tracker) emit(u Update) {
	select {
	case t.updates <- u:
	default:
	}
}

func progressText(rec *Record, msg Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	if rec.Indeterminate {
		return "working"
	}
	text := fmt.Sprintf("%.0f%%", rec.Percent)
	if rec.Rounds > 0 {
		text = fmt.Sprintf("%s (round %d/%d)", text, rec.Round, rec.Rounds)
	}
	return text
}
