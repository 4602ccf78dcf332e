package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
	KeyUp      = "up"
	KeyDown    = "down"
)

// keyMap lists every binding the dashboard responds to.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys(KeyUp),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys(KeyDown),
		key.WithHelp("↓", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys(KeyQuit, KeyQuitAlt),
		key.WithHelp("q", "quit"),
	),
}

// ScrollState is the only state mutated by keyboard input: the index of the
// first visible process row.
//
// Invariant: 0 <= Offset <= max(0, rows-pageSize). Every method returns a
// clamped value, and rendering clamps again because the row count can shrink
// between cycles.
type ScrollState struct {
	Offset int
}

// MaxOffset returns the largest valid offset for rows and pageSize.
func MaxOffset(rows, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if rows <= pageSize {
		return 0
	}
	return rows - pageSize
}

// Clamp returns s with Offset forced into range.
func (s ScrollState) Clamp(rows, pageSize int) ScrollState {
	maxOffset := MaxOffset(rows, pageSize)
	switch {
	case s.Offset < 0:
		s.Offset = 0
	case s.Offset > maxOffset:
		s.Offset = maxOffset
	}
	return s
}

// Up scrolls one row toward the top.
func (s ScrollState) Up(rows, pageSize int) ScrollState {
	s.Offset--
	return s.Clamp(rows, pageSize)
}

// Down scrolls one row toward the bottom.
func (s ScrollState) Down(rows, pageSize int) ScrollState {
	s.Offset++
	return s.Clamp(rows, pageSize)
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
// Keys never trigger a collection; the next render uses the data already held.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	rows := len(m.procs)

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Up):
		m.scroll = m.scroll.Up(rows, m.opts.PageSize)
		return true, nil

	case key.Matches(msg, keys.Down):
		m.scroll = m.scroll.Down(rows, m.opts.PageSize)
		return true, nil
	}

	return false, nil
}
