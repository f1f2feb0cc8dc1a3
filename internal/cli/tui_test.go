package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antennamap/antennamap/pkg/antenna"
	mapio "github.com/antennamap/antennamap/pkg/io"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m AntennaListModel, keys ...string) (AntennaListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(AntennaListModel)
	}
	return m, cmd
}

func defaultGraph(t *testing.T) *antenna.Graph {
	t.Helper()
	g, err := mapio.DefaultMap().Graph()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestAntennaListNavigation(t *testing.T) {
	g := defaultGraph(t)
	m := NewAntennaListModel("Select source antenna", g, nil)

	m, _ = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}
	m, _ = press(m, "down", "j", "j", "k")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	m, _ = press(m, "down", "down", "down", "down", "down", "down")
	if m.Cursor != g.Len()-1 {
		t.Errorf("cursor = %d, want last row %d", m.Cursor, g.Len()-1)
	}

	m, cmd := press(m, "enter")
	if m.Selected == nil || m.Selected.ID != antenna.ID(g.Len()-1) {
		t.Fatalf("Selected = %v, want last antenna", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestAntennaListDisallowed(t *testing.T) {
	g := defaultGraph(t)
	onlyA := func(a antenna.Antenna) bool { return a.Freq == 'A' }
	m := NewAntennaListModel("Select destination antenna", g, onlyA)

	// Antenna 0 broadcasts on '0'.
	m, cmd := press(m, "enter")
	if m.Selected != nil || cmd != nil {
		t.Error("a disallowed antenna must not be selectable")
	}

	m, _ = press(m, "down", "down", "enter")
	if m.Selected == nil || m.Selected.Freq != 'A' {
		t.Errorf("Selected = %v, want an A antenna", m.Selected)
	}
}

func TestAntennaListQuit(t *testing.T) {
	m := NewAntennaListModel("Pick", defaultGraph(t), nil)
	m, cmd := press(m, "q")
	if m.Selected != nil || cmd == nil {
		t.Error("q should quit without a selection")
	}
}

func TestAntennaListView(t *testing.T) {
	m := NewAntennaListModel("Select source antenna", defaultGraph(t), nil)
	m, _ = press(m, "down")
	view := m.View()

	for _, want := range []string{"Select source antenna", "Position", "(4,4)", "▸", "[2/7]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAntennaListResize(t *testing.T) {
	m := NewAntennaListModel("Pick", defaultGraph(t), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if got := next.(AntennaListModel).Height; got != 5 {
		t.Errorf("Height = %d, want floor of 5", got)
	}
}
