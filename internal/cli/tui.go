package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/antennamap/antennamap/pkg/antenna"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AntennaListModel - Interactive antenna selection
// =============================================================================

// AntennaListModel is the bubbletea model for picking an antenna.
// Antennas for which Allowed returns false are shown dimmed and cannot be
// selected.
type AntennaListModel struct {
	Title    string
	Graph    *antenna.Graph
	Antennas []antenna.Antenna
	Allowed  func(antenna.Antenna) bool
	Cursor   int
	Selected *antenna.Antenna
	Height   int
	Offset   int
}

// NewAntennaListModel creates a picker over every antenna of g.
func NewAntennaListModel(title string, g *antenna.Graph, allowed func(antenna.Antenna) bool) AntennaListModel {
	if allowed == nil {
		allowed = func(antenna.Antenna) bool { return true }
	}
	return AntennaListModel{
		Title:    title,
		Graph:    g,
		Antennas: g.Antennas(),
		Allowed:  allowed,
		Height:   15,
	}
}

func (m AntennaListModel) Init() tea.Cmd {
	return nil
}

func (m AntennaListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Antennas)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Antennas) == 0 {
				return m, nil
			}
			a := m.Antennas[m.Cursor]
			if !m.Allowed(a) {
				return m, nil
			}
			m.Selected = &a
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m AntennaListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Antennas))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		a := m.Antennas[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(int(a.ID)),
			a.Freq.String(),
			a.Pos.String(),
			strconv.Itoa(m.Graph.Degree(a.ID)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Freq", "Position", "Links").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Antennas) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if !m.Allowed(m.Antennas[idx]) {
				return base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Antennas))))

	return b.String()
}

// pickAntenna runs the picker and returns the chosen antenna, or false when
// the user quit without choosing.
func pickAntenna(title string, g *antenna.Graph, allowed func(antenna.Antenna) bool) (antenna.Antenna, bool, error) {
	final, err := tea.NewProgram(NewAntennaListModel(title, g, allowed)).Run()
	if err != nil {
		return antenna.Antenna{}, false, err
	}
	fm, ok := final.(AntennaListModel)
	if !ok || fm.Selected == nil {
		return antenna.Antenna{}, false, nil
	}
	return *fm.Selected, true, nil
}
