package render

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
)

func line(t *testing.T, layout string) *antenna.Graph {
	t.Helper()
	g := antenna.New()
	for y, row := range strings.Split(layout, "\n") {
		for x := range len(row) {
			if row[x] == '.' {
				continue
			}
			if _, err := g.AddAntenna(antenna.Frequency(row[x]), x, y); err != nil {
				t.Fatal(err)
			}
		}
	}
	g.Connect()
	return g
}

func TestGrid(t *testing.T) {
	g := line(t, "..A.A...\n........")
	b := interference.Bounds{Rows: 2, Cols: 8}

	got := Grid(g, b, interference.Project(g, b))
	want := []string{"#.A.A.#.", "........"}
	if !slices.Equal(got, want) {
		t.Errorf("Grid =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestGridKeepsAntennas(t *testing.T) {
	g := line(t, "A.A.B")
	b := interference.Bounds{Rows: 1, Cols: 5}

	got := Grid(g, b, interference.Project(g, b))
	if !slices.Equal(got, []string{"A.A.B"}) {
		t.Errorf("Grid = %v", got)
	}
	if Grid(g, interference.Bounds{}, interference.Cells{}) != nil {
		t.Error("zero bounds should draw nothing")
	}
}

func TestText(t *testing.T) {
	g := line(t, "0..0..")
	var buf bytes.Buffer
	if err := Text(&buf, g, interference.Bounds{Rows: 2, Cols: 7}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0..0..#\n.......\n"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestAdjacency(t *testing.T) {
	g := line(t, "A.A.A\n....B")
	var buf bytes.Buffer
	if err := Adjacency(&buf, g); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Graph (4 antennas):",
		"Antenna A (0,0) -> A(2,0)  A(4,0)",
		"Antenna A (2,0) -> A(0,0)  A(4,0)",
		"Antenna A (4,0) -> A(0,0)  A(2,0)",
		"Antenna B (4,1) -> no connections",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("Adjacency =\n%s\nwant\n%s", buf.String(), want)
	}
}
