package crossing

import (
	"testing"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/geom"
)

func add(t *testing.T, g *antenna.Graph, f antenna.Frequency, x, y int) antenna.ID {
	t.Helper()
	id, err := g.AddAntenna(f, x, y)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestFindCount(t *testing.T) {
	g := antenna.New()
	add(t, g, 'A', 0, 0)
	add(t, g, 'A', 4, 4)
	g.Connect()

	if res := Find(g, 'A', '0'); res.Count != 0 {
		t.Fatalf("no second class: Count = %d, want 0", res.Count)
	}

	add(t, g, '0', 0, 4)
	add(t, g, '0', 4, 0)
	g.Connect()

	res := Find(g, 'A', '0')
	if res.Count != 1 {
		t.Fatalf("Count = %d, want 1", res.Count)
	}
	got := res.Intersections[0]
	if got.Point != geom.Pt(2, 2) {
		t.Errorf("Point = %v, want (2,2)", got.Point)
	}
	if got.A.String() != "A(0,0)-A(4,4)" || got.B.String() != "0(0,4)-0(4,0)" {
		t.Errorf("segments = %v, %v", got.A, got.B)
	}

	// A second A segment through the same point does not add a result.
	add(t, g, 'A', 1, 1)
	g.Connect()
	if res := Find(g, 'A', '0'); res.Count != 1 {
		t.Errorf("after duplicate crossing: Count = %d, want 1", res.Count)
	}
}

func TestFindDistinctPoints(t *testing.T) {
	g := antenna.New()
	// Horizontal A segment crossed by two vertical 0 segments.
	add(t, g, 'A', 0, 2)
	add(t, g, 'A', 8, 2)
	a0, a1 := add(t, g, '0', 2, 0), add(t, g, '0', 2, 4)
	b0, b1 := add(t, g, '0', 6, 0), add(t, g, '0', 6, 4)
	for _, e := range [][2]antenna.ID{{a0, a1}, {b0, b1}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}

	res := Find(g, 'A', '0')
	if res.Count != 2 {
		t.Fatalf("Count = %d, want 2: %v", res.Count, res.Intersections)
	}
	if res.Intersections[0].Point != geom.Pt(2, 2) || res.Intersections[1].Point != geom.Pt(6, 2) {
		t.Errorf("points = %v, %v", res.Intersections[0].Point, res.Intersections[1].Point)
	}
}

func TestFindParallel(t *testing.T) {
	g := antenna.New()
	add(t, g, 'A', 0, 0)
	add(t, g, 'A', 4, 0)
	add(t, g, '0', 0, 2)
	add(t, g, '0', 4, 2)
	g.Connect()

	if res := Find(g, 'A', '0'); res.Count != 0 || res.Intersections != nil {
		t.Errorf("parallel segments: %+v", res)
	}
}

func TestIntersectionString(t *testing.T) {
	i := Intersection{
		Point: geom.Pt(2, 2),
		A:     Segment{U: antenna.Antenna{Freq: 'A', Pos: geom.Pt(0, 0)}, V: antenna.Antenna{Freq: 'A', Pos: geom.Pt(4, 4)}},
		B:     Segment{U: antenna.Antenna{Freq: '0', Pos: geom.Pt(0, 4)}, V: antenna.Antenna{Freq: '0', Pos: geom.Pt(4, 0)}},
	}
	if got, want := i.String(), "A(0,0)-A(4,4) x 0(0,4)-0(4,0) at (2,2)"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
