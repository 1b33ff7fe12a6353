package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/game"
	"github.com/cuberush/cuberush/internal/level"
	"github.com/cuberush/cuberush/internal/replay"
)

// Options configures a game session.
type Options struct {
	// Catalog supplies the levels. Required.
	Catalog *level.Catalog

	// StartID selects the level the campaign starts at. Empty means the
	// first level of the catalog.
	StartID string

	// Tuning holds the physics and world constants.
	Tuning config.Tuning

	// Sink receives sound events. May be nil for silent sessions.
	Sink game.SoundSink

	// FPS is the frame rate. Zero means DefaultFPS.
	FPS int

	// Record captures the player's runs. The recording of the last
	// finished or abandoned run is available from the final model.
	Record bool

	// Reload delivers level file paths whose content changed on disk.
	// Loader rebuilds the catalog when a reload arrives. Both optional.
	Reload <-chan string
	Loader func() (*level.Catalog, error)
}

// reloadMsg carries the path of a changed level file.
type reloadMsg string

// Model is the Bubble Tea model for a game session.
type Model struct {
	opts    Options
	g       *game.Game
	rec     *replay.Recorder
	startID string

	screen *Screen
	keys   GameKeyMap
	help   help.Model

	lastTick time.Time
	jumped   bool
	notice   string

	back     bool
	quitting bool
}

// NewModel builds a session model over the given options.
func NewModel(opts Options) (Model, error) {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}

	g, startID, err := buildGame(opts.Catalog, opts.StartID, opts.Tuning, opts.Sink)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:    opts,
		g:       g,
		startID: startID,
		screen:  NewScreen(80, 24),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}, nil
}

// buildGame assembles the campaign starting at startID and returns the
// resolved start ID.
func buildGame(cat *level.Catalog, startID string, tuning config.Tuning, sink game.SoundSink) (*game.Game, string, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, "", fmt.Errorf("no levels available")
	}

	levels := cat.List()
	if startID != "" {
		var err error
		levels, err = cat.From(startID)
		if err != nil {
			return nil, "", err
		}
	}

	g, err := game.New(levels, tuning, sink)
	if err != nil {
		return nil, "", err
	}
	return g, levels[0].ID, nil
}

// Init starts the frame loop and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.opts.FPS), waitReload(m.opts.Reload))
}

// waitReload blocks on the reload channel and surfaces the next change as
// a message. Returns nil when no channel is configured.
func waitReload(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(path)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case reloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	st := m.g.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		// Mid-run esc pauses; from any resting state it leaves the
		// session. The session wrapper decides what "leave" means.
		if st.Running && !st.Paused && !st.Over {
			m.g.TogglePause()
			return m, nil
		}
		m.back = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		if !st.Running && !st.Over {
			m.startRun()
			return m, nil
		}
		m.g.Jump()
		m.jumped = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if st.Over {
			m.startRun()
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.g.TogglePause()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// startRun begins a fresh run. When recording, every run gets its own
// recorder; the last one wins.
func (m *Model) startRun() {
	if m.opts.Record {
		m.rec = replay.NewRecorder(m.startID)
	}
	m.notice = ""
	m.g.StartRun()
}

// handleResize adjusts the screen buffer. World coordinates are fixed, so
// a resize only changes the projection, never the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w := max(msg.Width, 1)
	h := max(msg.Height-1, 1) // bottom row belongs to the help bar
	m.screen.Resize(w, h)
	m.help.Width = w
	return m, nil
}

// handleTick advances the simulation by the measured time since the last
// tick. Frames are recorded only while the run actively progresses, so a
// recording never contains pause or menu gaps.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	st := m.g.State()
	if m.rec != nil && st.Running && !st.Paused && !st.Over {
		m.rec.Frame(dt, m.jumped)
	}
	m.jumped = false

	m.g.Advance(dt)

	return m, tickCmd(m.opts.FPS)
}

// handleReload swaps in a freshly loaded catalog and drops back to the
// launch screen. A failed reload keeps the current levels running.
func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	cmd := waitReload(m.opts.Reload)
	if m.opts.Loader == nil {
		return m, cmd
	}

	cat, err := m.opts.Loader()
	if err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", err)
		return m, cmd
	}

	startID := m.startID
	if !cat.Exists(startID) {
		startID = ""
	}
	g, resolved, err := buildGame(cat, startID, m.opts.Tuning, m.opts.Sink)
	if err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", err)
		return m, cmd
	}

	m.opts.Catalog = cat
	m.g = g
	m.startID = resolved
	m.rec = nil
	m.notice = fmt.Sprintf("levels reloaded: %s", filepath.Base(string(msg)))
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.g.Snapshot(), m.opts.Tuning.World)

	dir := filepath.Join(os.Getenv("HOME"), ".cuberush", "screenshots")
	//nolint:errcheck // Best-effort save, game continues regardless
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.startID, timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.g.Snapshot(), m.opts.Tuning.World)
	if m.notice != "" {
		m.screen.DrawText(1, m.screen.Height()-1, m.notice, ColorBrightYellow)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Recorder returns the recorder of the most recent run, or nil when
// recording is off or no run has started.
func (m Model) Recorder() *replay.Recorder {
	return m.rec
}

// Snapshot exposes the current game state, mainly for the session wrapper
// and tests.
func (m Model) Snapshot() game.Snapshot {
	return m.g.Snapshot()
}

// BackRequested reports whether the player asked to leave the session.
func (m Model) BackRequested() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the session ends.
// The returned model carries the final game state and recording.
func Run(opts Options) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final model type %T", final)
	}
	return m, nil
}
