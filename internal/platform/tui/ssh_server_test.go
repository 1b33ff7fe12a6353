package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuberush/cuberush/internal/config"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	cat := testCatalog(t,
		flatTrack("liftoff", "Liftoff", 4500),
		flatTrack("overdrive", "Overdrive", 5200),
	)
	return NewSessionModel(cat, config.DefaultTuning(), 80, 24, "tester")
}

func applySession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	typed, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return typed, cmd
}

func TestSessionStartsAtPicker(t *testing.T) {
	m := newTestSession(t)

	view := m.View()
	if !strings.Contains(view, "Select a track") {
		t.Errorf("session should start at the picker:\n%s", view)
	}
}

func TestSessionPickerIntoGame(t *testing.T) {
	m := newTestSession(t)

	m, cmd := applySession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inGame {
		t.Fatal("selecting a level should enter the game")
	}
	if cmd == nil {
		t.Error("entering the game should start its tick loop")
	}

	if view := m.View(); !strings.Contains(view, "CUBE RUSH") {
		t.Errorf("fresh game should show the launch banner:\n%s", view)
	}
}

func TestSessionPickerSelectsStartLevel(t *testing.T) {
	m := newTestSession(t)

	m, _ = applySession(t, m, keyRunes('j'))
	m, _ = applySession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inGame {
		t.Fatal("selection should enter the game")
	}

	if got := m.gameModel.Snapshot().LevelName; got != "Overdrive" {
		t.Errorf("game should start at the picked level, got %q", got)
	}
}

func TestSessionBackReturnsToPicker(t *testing.T) {
	m := newTestSession(t)
	m, _ = applySession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Esc from the idle launch screen goes back to the picker instead of
	// killing the session.
	m, _ = applySession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inGame {
		t.Fatal("esc from idle game should return to the picker")
	}
	if m.quitting {
		t.Fatal("back must not end the session")
	}
	if view := m.View(); !strings.Contains(view, "Select a track") {
		t.Errorf("session should render the picker again:\n%s", view)
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = applySession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := applySession(t, m, keyRunes('q'))
	if !m.quitting {
		t.Error("q in game should end the session")
	}
	if cmd == nil {
		t.Error("quit should return a quit command")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestSessionGameKeepsRunningThroughTicks(t *testing.T) {
	m := newTestSession(t)
	m, _ = applySession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = applySession(t, m, keyRunes('w')) // launch

	start := time.Unix(10, 0)
	m, _ = applySession(t, m, TickMsg(start))
	m, _ = applySession(t, m, TickMsg(start.Add(20*time.Millisecond)))

	if got := m.gameModel.Snapshot().Score; got <= 0 {
		t.Errorf("game should progress inside the session, score = %v", got)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address == "" {
		t.Error("default config needs a listen address")
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("default config needs an idle timeout")
	}
}
