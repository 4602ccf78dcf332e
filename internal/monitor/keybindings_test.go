package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxOffset(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		pageSize int
		expect   int
	}{
		{"empty", 0, 20, 0},
		{"fewer than page", 5, 20, 0},
		{"exactly one page", 20, 20, 0},
		{"more than page", 100, 20, 80},
		{"zero page size", 3, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, MaxOffset(tt.rows, tt.pageSize))
		})
	}
}

func TestScrollState_Clamp(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		rows   int
		expect int
	}{
		{"negative", -3, 100, 0},
		{"in range", 10, 100, 10},
		{"past end", 95, 100, 80},
		{"rows shrank", 80, 30, 10},
		{"rows gone", 80, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScrollState{Offset: tt.offset}.Clamp(tt.rows, 20)
			assert.Equal(t, tt.expect, got.Offset)
		})
	}
}

func TestScrollState_UpDown(t *testing.T) {
	s := ScrollState{}

	s = s.Up(100, 20)
	assert.Equal(t, 0, s.Offset, "cannot scroll above the first row")

	s = s.Down(100, 20)
	s = s.Down(100, 20)
	assert.Equal(t, 2, s.Offset)

	s = ScrollState{Offset: 80}.Down(100, 20)
	assert.Equal(t, 80, s.Offset, "cannot scroll past the last page")

	s = ScrollState{Offset: 80}.Up(100, 20)
	assert.Equal(t, 79, s.Offset)
}

func keyModel(rows int) *Model {
	m := NewModel(&stubCollector{}, Options{})
	m.procs = make([]ProcessSample, rows)
	return &m
}

func TestHandleKeyMsg_Scroll(t *testing.T) {
	m := keyModel(30)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, handled)
	assert.Nil(t, cmd, "keys must not trigger collection")
	assert.Equal(t, 1, m.scroll.Offset)

	for i := 0; i < 50; i++ {
		m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 10, m.scroll.Offset)

	handled, _ = m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, handled)
	assert.Equal(t, 9, m.scroll.Offset)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := keyModel(0)
			handled, cmd := m.HandleKeyMsg(tt.msg)

			assert.True(t, handled)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestHandleKeyMsg_Unbound(t *testing.T) {
	m := keyModel(30)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.scroll.Offset)
	assert.False(t, m.quitting)
}
