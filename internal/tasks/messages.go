package tasks

// Kind enumerates the job kinds the backend can run.
type Kind int

const (
	Translate Kind = iota
	Correct
	Transcribe
	Glossary
)

// Label returns the wire label carried in the push messages' task field.
func (k Kind) Label() string {
	switch k {
	case Translate:
		return "translate"
	case Correct:
		return "correct"
	case Transcribe:
		return "transcribe"
	case Glossary:
		return "glossary"
	default:
		return ""
	}
}

// Endpoint returns the backend path that starts a job of this kind.
func (k Kind) Endpoint() string {
	switch k {
	case Translate, Correct:
		return "/api/process_subtitle"
	case Transcribe:
		return "/api/generate_subtitle"
	case Glossary:
		return "/api/generate_glossary"
	default:
		return ""
	}
}

// ProducesLyrics reports whether a completed job of this kind yields an
// artifact that should be reloaded as the active lyric source.
func (k Kind) ProducesLyrics() bool {
	return k == Translate || k == Correct
}

// KindFromLabel resolves a wire label back to its Kind.
func KindFromLabel(label string) (Kind, bool) {
	switch label {
	case "translate":
		return Translate, true
	case "correct":
		return Correct, true
	case "transcribe":
		return Transcribe, true
	case "glossary":
		return Glossary, true
	default:
		return 0, false
	}
}

// Message kind strings carried in the type field.
const (
	TypeProgress  = "progress"
	TypeComplete  = "complete"
	TypeCancelled = "cancelled"
	TypeError     = "error"
)

// Message is the wire shape of one push-channel payload.
// All fields except Type are optional.
type Message struct {
	Type          string `json:"type"`
	Task          string `json:"task,omitempty"`
	VTTFile       string `json:"vtt_file,omitempty"`
	Current       int    `json:"current,omitempty"`
	Total         int    `json:"total,omitempty"`
	CurrentRound  int    `json:"current_round,omitempty"`
	TotalRounds   int    `json:"total_rounds,omitempty"`
	ProcessedFile string `json:"processed_file,omitempty"`
	GlossaryFile  string `json:"glossary_file,omitempty"`
	Text          string `json:"message,omitempty"`
}
