package tasks

// Update is a UI-facing snapshot emitted whenever a task record changes.
type Update struct {
	Key  string
	Kind Kind
	// Path is the file the task was started on, as passed to Begin.
	// Cancellation requests must identify the task by this path, not by
	// whatever the view currently shows.
	Path    string
	Status  Status
	Percent float64
	// Indeterminate is set when progress arrived without a usable total.
	Indeterminate bool
	Round         int
	Rounds        int
	Text          string
	Artifact      string
}

func (r *Record) snapshot() Update {
	return Update{
		Key:           r.Key,
		Kind:          r.Kind,
		Path:          r.Path,
		Status:        r.Status,
		Percent:       r.Percent,
		Indeterminate: r.Indeterminate,
		Round:         r.Round,
		Rounds:        r.Rounds,
		Text:          r.Text,
		Artifact:      r.Artifact,
	}
}
