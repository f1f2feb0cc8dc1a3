package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/antennamap/antennamap/pkg/antenna"
)

type document struct {
	Antennas []node `json:"antennas"`
	Edges    []edge `json:"edges"`
}

type node struct {
	ID   int    `json:"id"`
	Freq string `json:"freq"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WriteJSON encodes g as node-link JSON and writes it to w.
// Edges are listed once each, lower id first, in insertion order.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *antenna.Graph, w io.Writer) error {
	ants := g.Antennas()
	edges := g.Edges()
	out := document{
		Antennas: make([]node, len(ants)),
		Edges:    make([]edge, len(edges)),
	}

	for i, a := range ants {
		out.Antennas[i] = node{ID: int(a.ID), Freq: a.Freq.String(), X: a.Pos.X, Y: a.Pos.Y}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: int(e.From), To: int(e.To)}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *antenna.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
