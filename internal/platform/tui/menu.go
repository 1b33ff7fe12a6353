package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cuberush/cuberush/internal/level"
)

// MenuItem represents a selectable level in the picker.
type MenuItem struct {
	ID         string
	Name       string
	Length     float64
	Multiplier float64
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected *MenuItem
	quitting bool
}

// NewMenuModel creates a picker over the catalog, in campaign order.
func NewMenuModel(cat *level.Catalog) MenuModel {
	levels := cat.List()
	items := make([]MenuItem, 0, len(levels))
	for _, lvl := range levels {
		items = append(items, MenuItem{
			ID:         lvl.ID,
			Name:       lvl.Name,
			Length:     lvl.Length,
			Multiplier: lvl.SpeedMultiplier,
		})
	}

	return MenuModel{
		items:  items,
		cursor: 0,
		width:  80,
		height: 24,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C U B E   R U S H  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a track", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-14s %6.0fu  x%.2f", cursor, item.Name, item.Length, item.Multiplier)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// The help view carries ANSI styling, so it is not centered like the
	// plain lines above.
	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if runeLen(text) >= width {
		return text
	}
	padding := (width - runeLen(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID string
	Quit    bool
}

// RunMenu runs the level picker and returns the selection.
func RunMenu(cat *level.Catalog) (MenuResult, error) {
	model := NewMenuModel(cat)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{LevelID: m.Selected().ID}, nil
}
