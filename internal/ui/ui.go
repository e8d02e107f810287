package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vtx/internal/lyrics"
	"github.com/desertthunder/vtx/internal/models"
	"github.com/desertthunder/vtx/internal/playback"
	"github.com/desertthunder/vtx/internal/repositories"
	"github.com/desertthunder/vtx/internal/scroll"
	"github.com/desertthunder/vtx/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SongListView ViewState = iota
	PlayerView
)

// TrackEngine is the playback surface the view drives: the engine contract
// plus the ability to point the clock at a new track.
type TrackEngine interface {
	playback.Engine
	Load(duration float64)
}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	engine     TrackEngine
	repo       *repositories.SongRepository
	tracker    *tasks.Tracker
	taskClient *tasks.Client
	controller *scroll.Controller
	mediaDir   string

	width  int
	height int

	songList list.Model
	songs    []*models.Song
	selected *models.Song

	timeline  lyrics.Timeline
	lyricPath string
	geom      scroll.Geometry
	position  float64
	playing   bool

	active []tasks.Update
	notice string
	err    error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine TrackEngine, repo *repositories.SongRepository, tracker *tasks.Tracker, client *tasks.Client, mediaDir string, hold time.Duration) *Model {
	return &Model{
		ctx:        ctx,
		view:       SongListView,
		engine:     engine,
		repo:       repo,
		tracker:    tracker,
		taskClient: client,
		controller: scroll.NewController(hold),
		mediaDir:   mediaDir,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init initializes the TUI by loading the song library.
func (m *Model) Init() tea.Cmd {
	return m.loadSongs()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.songList.Width() == 0 {
			m.songList.SetSize(msg.Width-4, msg.Height-8)
		}
		m.refreshGeometry()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SongListView:
			return m.handleSongListKeys(msg)
		case PlayerView:
			return m.handlePlayerKeys(msg)
		}

	case songsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.songs = msg.songs
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song}
		}
		m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.songList.Title = "Library"
		m.songList.SetSize(m.width-4, m.height-8)
		return m, nil

	case lyricsLoadedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("lyrics unavailable: %v", msg.err)
			m.timeline = nil
		} else {
			m.timeline = msg.timeline
			m.lyricPath = msg.path
		}
		m.controller.SetTimeline(m.timeline)
		m.refreshGeometry()
		return m, nil

	case FrameMsg:
		m.position = msg.Position
		if m.playing && m.engine.Duration() > 0 && m.position >= m.engine.Duration() {
			m.playing = false
		}
		m.controller.Tick(m.position)
		return m, nil

	case TaskMsg:
		m.active = m.tracker.Active()
		u := msg.Update
		if u.Status.Terminal() {
			m.notice = fmt.Sprintf("%s: %s", u.Kind.Label(), u.Text)
		}
		if u.Status == tasks.StatusCompleted && u.Kind.ProducesLyrics() && u.Artifact != "" {
			resolved := m.resolveArtifact(u.Artifact)
			if m.selected != nil {
				if err := m.repo.SetLyricPath(m.selected.ID(), resolved); err == nil {
					m.selected.SetLyricPath(resolved)
				}
			}
			return m, m.loadLyrics(resolved)
		}
		return m, nil

	case taskStartedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("%s request failed: %v", msg.kind.Label(), msg.err)
		} else {
			m.notice = fmt.Sprintf("%s started", msg.kind.Label())
		}
		m.active = m.tracker.Active()
		return m, nil
	}

	if m.view == SongListView {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case SongListView:
		return m.renderSongList()
	case PlayerView:
		return m.renderPlayer()
	default:
		return ""
	}
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		selected := m.songList.SelectedItem()
		if item, ok := selected.(songItem); ok {
			return m, m.openSong(item.song)
		}
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.engine.Pause()
		m.playing = false
		m.view = SongListView
		return m, nil

	case key.Matches(msg, m.keys.playPause):
		if m.playing {
			m.engine.Pause()
			m.playing = false
		} else {
			m.engine.Play()
			m.playing = true
		}
		return m, nil

	case key.Matches(msg, m.keys.up):
		m.controller.Scroll(1)
		return m, nil

	case key.Matches(msg, m.keys.down):
		m.controller.Scroll(-1)
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if seconds, ok := m.controller.PlayFromTarget(); ok {
			m.engine.Seek(seconds)
			m.engine.Play()
			m.playing = true
		}
		return m, nil

	case key.Matches(msg, m.keys.translate):
		return m, m.startTask(tasks.Translate)
	case key.Matches(msg, m.keys.correct):
		return m, m.startTask(tasks.Correct)
	case key.Matches(msg, m.keys.glossary):
		return m, m.startTask(tasks.Glossary)

	case key.Matches(msg, m.keys.cancel):
		return m, m.cancelFirstTask()
	}
	return m, nil
}

func (m *Model) loadSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.repo.List(map[string]any{})
		return songsLoadedMsg{songs: songs, err: err}
	}
}

// openSong switches to the player and kicks off the lyric load. The
// previous timeline keeps rendering until the new one arrives.
func (m *Model) openSong(song *models.Song) tea.Cmd {
	m.selected = song
	m.engine.Load(song.Duration())
	m.position = 0
	m.playing = false
	m.timeline = nil
	m.lyricPath = ""
	m.controller.SetTimeline(nil)
	m.notice = ""
	m.view = PlayerView

	if song.LyricPath() == "" {
		m.notice = "no lyrics for this song"
		return nil
	}
	return m.loadLyrics(m.resolveArtifact(song.LyricPath()))
}

func (m *Model) loadLyrics(path string) tea.Cmd {
	return func() tea.Msg {
		timeline, err := lyrics.LoadFile(path)
		return lyricsLoadedMsg{timeline: timeline, path: path, err: err}
	}
}

// startTask registers the pending record, then fires the request. A
// rejected request fails the record through the same handler path an
// error push message would take.
func (m *Model) startTask(kind tasks.Kind) tea.Cmd {
	if m.selected == nil || m.selected.LyricPath() == "" {
		m.notice = "no lyric source to process"
		return nil
	}
	path := m.selected.LyricPath()

	if _, err := m.tracker.Begin(kind, path); err != nil {
		m.notice = fmt.Sprintf("%s: %v", kind.Label(), err)
		return nil
	}

	return func() tea.Msg {
		err := m.taskClient.Start(m.ctx, kind, path)
		if err != nil {
			m.tracker.Handle(tasks.Message{
				Type: tasks.TypeError, Task: kind.Label(), VTTFile: path, Text: err.Error(),
			})
		}
		return taskStartedMsg{kind: kind, err: err}
	}
}

// cancelFirstTask fires a cancel for the oldest active task, identified
// by the path it was started on. The record stays in the registry until
// the backend's cancelled message arrives.
func (m *Model) cancelFirstTask() tea.Cmd {
	active := m.tracker.Active()
	if len(active) == 0 {
		m.notice = "no active task"
		return nil
	}
	u := active[0]

	return func() tea.Msg {
		err := m.taskClient.Cancel(m.ctx, u.Kind, u.Path)
		if err != nil {
			return taskStartedMsg{kind: u.Kind, err: err}
		}
		return nil
	}
}

// refreshGeometry rebuilds the scroll geometry from the current timeline
// and terminal size. Every entry renders as one row.
func (m *Model) refreshGeometry() {
	heights := make([]float64, len(m.timeline))
	for i := range heights {
		heights[i] = 1
	}
	m.geom = scroll.Geometry{
		ViewportHeight: float64(m.lyricViewport()),
		PanelHeight:    1,
		EntryHeights:   heights,
	}
	m.controller.SetGeometry(m.geom)
}

// lyricViewport is the row count available to the lyric pane.
func (m *Model) lyricViewport() int {
	rows := m.height - 9
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) renderSongList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.songList.View(), helpView)
}

func (m *Model) renderPlayer() string {
	title := styles.title.Render(m.selected.Title())
	status := m.renderStatus()
	pane := m.renderLyrics()
	taskPanel := m.renderTasks()

	helpKeys := []key.Binding{m.keys.playPause, m.keys.up, m.keys.down, m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", title, status, pane, taskPanel, helpView)
}

func (m *Model) renderStatus() string {
	state := "paused"
	if m.playing {
		state = "playing"
	}
	line := fmt.Sprintf("%s  %s / %s", state, formatTime(m.position), formatTime(m.engine.Duration()))
	if m.controller.Mode() == scroll.ManualOverride {
		line += "  " + styles.warn.Render("[manual]")
	}
	if m.notice != "" {
		line += "  " + styles.help.Render(m.notice)
	}
	return line
}

// renderLyrics paints the timeline through the controller's offset: each
// entry occupies one row at its top position plus the scroll offset.
func (m *Model) renderLyrics() string {
	vp := m.lyricViewport()
	rows := make([]string, vp)

	if len(m.timeline) == 0 {
		return strings.Repeat("\n", vp-1)
	}

	for i, entry := range m.timeline {
		row := int(m.geom.EntryTop(i) + m.controller.Offset())
		if row < 0 || row >= vp {
			continue
		}
		text := strings.Join(entry.Texts, " / ")
		switch {
		case i == m.controller.Target() && m.controller.Mode() == scroll.ManualOverride:
			rows[row] = styles.target.Render("> " + text)
		case i == m.controller.Active():
			rows[row] = styles.active.Render("  " + text)
		default:
			rows[row] = styles.dim.Render("  " + text)
		}
	}

	return strings.Join(rows, "\n")
}

func (m *Model) renderTasks() string {
	if len(m.active) == 0 {
		return ""
	}

	var b strings.Builder
	for _, u := range m.active {
		var bar string
		if u.Indeterminate {
			bar = "..."
		} else {
			bar = fmt.Sprintf("%3.0f%%", u.Percent)
		}
		line := fmt.Sprintf("%s %s %s", u.Kind.Label(), bar, u.Text)
		switch u.Status {
		case tasks.StatusFailed:
			line = styles.err.Render(line)
		case tasks.StatusCompleted:
			line = styles.ok.Render(line)
		default:
			line = styles.warn.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) resolveArtifact(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.mediaDir, filepath.FromSlash(tasks.NormalizePath(path)))
}

func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
