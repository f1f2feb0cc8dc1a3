package antenna_test

import (
	"fmt"

	"github.com/antennamap/antennamap/pkg/antenna"
)

func ExampleGraph_Connect() {
	g := antenna.New()
	_, _ = g.AddAntenna('A', 6, 5)
	_, _ = g.AddAntenna('A', 8, 8)
	_, _ = g.AddAntenna('A', 7, 10)
	_, _ = g.AddAntenna('0', 7, 3)

	fmt.Println("Antennas:", g.Len())
	fmt.Println("Edges added:", g.Connect())
	fmt.Println("Frequencies:", g.Frequencies())
	// Output:
	// Antennas: 4
	// Edges added: 3
	// Frequencies: [0 A]
}

func ExampleGraph_FindVertex() {
	g := antenna.New()
	_, _ = g.AddAntenna('0', 4, 4)
	_, _ = g.AddAntenna('0', 7, 3)

	id, ok := g.FindVertex(7, 3)
	a, _ := g.Antenna(id)
	fmt.Println(ok, a)

	_, ok = g.FindVertex(3, 7)
	fmt.Println(ok)
	// Output:
	// true 0(7,3)
	// false
}

func ExampleGraph_Neighbors() {
	g := antenna.New()
	hub, _ := g.AddAntenna('A', 0, 0)
	for x := 1; x <= 3; x++ {
		id, _ := g.AddAntenna('A', x, 0)
		_ = g.AddEdge(hub, id)
	}

	for id := range g.Neighbors(hub) {
		a, _ := g.Antenna(id)
		fmt.Println(a)
	}
	// Output:
	// A(3,0)
	// A(2,0)
	// A(1,0)
}
