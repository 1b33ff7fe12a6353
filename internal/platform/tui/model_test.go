package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/level"
)

func testCatalog(t *testing.T, levels ...level.Level) *level.Catalog {
	t.Helper()
	cat, err := level.NewCatalog(levels...)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return cat
}

func flatTrack(id, name string, length float64) level.Level {
	return level.Level{ID: id, Name: name, Length: length, SpeedMultiplier: 1}
}

func spikeTrack(id string) level.Level {
	return level.Level{
		ID: id, Name: "Spiked", Length: 2000, SpeedMultiplier: 1,
		Obstacles: []level.Obstacle{{Kind: level.Spike, X: 600, Width: 42, Height: 36}},
	}
}

func newTestModel(t *testing.T, cat *level.Catalog, record bool) Model {
	t.Helper()
	m, err := NewModel(Options{
		Catalog: cat,
		Tuning:  config.DefaultTuning(),
		FPS:     60,
		Record:  record,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

// keyRunes builds the key message a plain character press produces.
func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// apply runs one message through the model and returns the typed result.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return typed, cmd
}

func TestModelStartsIdle(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	m := newTestModel(t, cat, false)

	snap := m.Snapshot()
	if snap.Running || snap.Over {
		t.Errorf("new model should be idle, got running=%v over=%v", snap.Running, snap.Over)
	}
}

func TestModelLaunchAndJump(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 100000))
	m := newTestModel(t, cat, false)

	// First jump key press launches the run instead of jumping.
	m, _ = apply(t, m, keyRunes('w'))
	if snap := m.Snapshot(); !snap.Running {
		t.Fatal("jump key should launch the run from idle")
	}
	if !m.Snapshot().Player.Grounded {
		t.Fatal("player should start grounded")
	}

	// Second press jumps.
	m, _ = apply(t, m, keyRunes('w'))

	start := time.Unix(10, 0)
	m, _ = apply(t, m, TickMsg(start)) // first tick only arms the clock
	m, _ = apply(t, m, TickMsg(start.Add(20*time.Millisecond)))

	if m.Snapshot().Player.Grounded {
		t.Error("player should be airborne after a jump and a tick")
	}
}

func TestModelMeasuredStep(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 100000))
	m := newTestModel(t, cat, false)
	m, _ = apply(t, m, keyRunes('w'))

	start := time.Unix(10, 0)
	m, _ = apply(t, m, TickMsg(start))
	if got := m.Snapshot().Score; got != 0 {
		t.Fatalf("the arming tick should not advance the game, score = %v", got)
	}

	// The model must feed the game the measured gap, not the nominal
	// frame interval. 20ms stays under the frame clamp.
	gap := 20 * time.Millisecond
	m, _ = apply(t, m, TickMsg(start.Add(gap)))
	if got, want := m.Snapshot().Score, gap.Seconds()*60; got != want {
		t.Errorf("score after one 20ms tick = %v, expected %v", got, want)
	}
}

func TestModelRecordsOnlyActiveFrames(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 100000))
	m := newTestModel(t, cat, true)

	if m.Recorder() != nil {
		t.Fatal("no recorder before the first run")
	}

	m, _ = apply(t, m, keyRunes('w'))
	if m.Recorder() == nil {
		t.Fatal("launching with recording on should create a recorder")
	}

	start := time.Unix(10, 0)
	step := 20 * time.Millisecond
	m, _ = apply(t, m, TickMsg(start))
	m, _ = apply(t, m, TickMsg(start.Add(step)))

	m, _ = apply(t, m, keyRunes('w')) // jump lands in the next frame
	m, _ = apply(t, m, TickMsg(start.Add(2*step)))

	// Pause: these ticks must not be recorded.
	m, _ = apply(t, m, keyRunes('p'))
	m, _ = apply(t, m, TickMsg(start.Add(3*step)))
	m, _ = apply(t, m, TickMsg(start.Add(4*step)))
	m, _ = apply(t, m, keyRunes('p'))
	m, _ = apply(t, m, TickMsg(start.Add(5*step)))

	rec := m.Recorder().Recording()
	if got, want := len(rec.Frames), 4; got != want {
		t.Fatalf("recorded %d frames, expected %d (pause gaps are dropped)", got, want)
	}
	if !rec.Frames[2].Jump {
		t.Error("the frame after the jump press should carry the jump flag")
	}
	if rec.Frames[1].Jump || rec.Frames[3].Jump {
		t.Error("other frames should not carry the jump flag")
	}
	if rec.LevelID != "flat" {
		t.Errorf("recording level = %q, expected flat", rec.LevelID)
	}
}

func TestModelPauseFreezesScore(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 100000))
	m := newTestModel(t, cat, false)
	m, _ = apply(t, m, keyRunes('w'))

	start := time.Unix(10, 0)
	m, _ = apply(t, m, TickMsg(start))
	m, _ = apply(t, m, TickMsg(start.Add(20*time.Millisecond)))

	before := m.Snapshot().Score
	m, _ = apply(t, m, keyRunes('p'))
	m, _ = apply(t, m, TickMsg(start.Add(40*time.Millisecond)))
	m, _ = apply(t, m, TickMsg(start.Add(60*time.Millisecond)))

	if got := m.Snapshot().Score; got != before {
		t.Errorf("score advanced during pause: %v -> %v", before, got)
	}
	if !m.Snapshot().Paused {
		t.Error("game should be paused")
	}

	m, _ = apply(t, m, keyRunes('p'))
	if m.Snapshot().Paused {
		t.Error("second pause press should resume")
	}
}

func TestModelEscPausesThenLeaves(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 100000))
	m := newTestModel(t, cat, false)
	m, _ = apply(t, m, keyRunes('w'))

	// Mid-run esc pauses instead of leaving.
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Snapshot().Paused {
		t.Fatal("esc during a run should pause")
	}
	if m.BackRequested() {
		t.Fatal("esc during a run should not leave the session")
	}

	// Esc while paused leaves.
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackRequested() {
		t.Error("esc while paused should request back")
	}
	if cmd == nil {
		t.Error("leaving should end the program")
	}
}

func TestModelGameOverAndRestart(t *testing.T) {
	cat := testCatalog(t, spikeTrack("spiked"))
	m := newTestModel(t, cat, true)
	m, _ = apply(t, m, keyRunes('w'))

	start := time.Unix(10, 0)
	step := 20 * time.Millisecond
	m, _ = apply(t, m, TickMsg(start))

	// Never jumping, the player runs into the spike at 600 units.
	var over bool
	for i := 1; i <= 200; i++ {
		m, _ = apply(t, m, TickMsg(start.Add(time.Duration(i)*step)))
		if m.Snapshot().Over {
			over = true
			break
		}
	}
	if !over {
		t.Fatal("run should end on the spike")
	}
	if m.Snapshot().Won {
		t.Error("crashing is not a win")
	}

	frames := m.Recorder().Len()
	if frames == 0 {
		t.Fatal("the crashed run should have recorded frames")
	}

	// r starts a fresh run with a fresh recorder.
	m, _ = apply(t, m, keyRunes('r'))
	snap := m.Snapshot()
	if !snap.Running || snap.Over {
		t.Errorf("restart should start a new run, got running=%v over=%v", snap.Running, snap.Over)
	}
	if snap.Score != 0 {
		t.Errorf("restart should reset the score, got %v", snap.Score)
	}
	if got := m.Recorder().Len(); got != 0 {
		t.Errorf("restart should begin a fresh recording, got %d frames", got)
	}
}

func TestModelReloadSwapsCatalog(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	reloaded := testCatalog(t, flatTrack("flat", "Flat Mk2", 1500))

	m, err := NewModel(Options{
		Catalog: cat,
		Tuning:  config.DefaultTuning(),
		Loader:  func() (*level.Catalog, error) { return reloaded, nil },
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	m, _ = apply(t, m, keyRunes('w')) // mid-run reload resets to idle
	m, _ = apply(t, m, reloadMsg("levels/flat.yaml"))

	snap := m.Snapshot()
	if snap.Running {
		t.Error("reload should drop back to the launch screen")
	}
	if snap.LevelName != "Flat Mk2" {
		t.Errorf("reload should swap in the new catalog, level = %q", snap.LevelName)
	}
	if !strings.Contains(m.notice, "reloaded") {
		t.Errorf("reload should set a notice, got %q", m.notice)
	}
}

func TestModelReloadFailureKeepsGame(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))

	m, err := NewModel(Options{
		Catalog: cat,
		Tuning:  config.DefaultTuning(),
		Loader:  func() (*level.Catalog, error) { return nil, errors.New("parse error") },
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	m, _ = apply(t, m, keyRunes('w'))
	m, _ = apply(t, m, reloadMsg("levels/flat.yaml"))

	snap := m.Snapshot()
	if !snap.Running {
		t.Error("a failed reload should leave the current run alone")
	}
	if !strings.Contains(m.notice, "reload failed") {
		t.Errorf("failed reload should set a notice, got %q", m.notice)
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	m := newTestModel(t, cat, false)

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen should be 100x29 after resize, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	m := newTestModel(t, cat, false)
	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "jump") {
		t.Errorf("view should include the help bar")
	}
	if !strings.Contains(view, "CUBE RUSH") {
		t.Errorf("idle view should show the launch banner")
	}
}

func TestModelQuitKey(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	m := newTestModel(t, cat, false)

	m, cmd := apply(t, m, keyRunes('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should end the program")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestNewModelRejectsUnknownStart(t *testing.T) {
	cat := testCatalog(t, flatTrack("flat", "Flat", 1000))
	_, err := NewModel(Options{
		Catalog: cat,
		StartID: "nope",
		Tuning:  config.DefaultTuning(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown start level")
	}
}

func TestWaitReloadNilChannel(t *testing.T) {
	if waitReload(nil) != nil {
		t.Error("waitReload(nil) should return no command")
	}
}
