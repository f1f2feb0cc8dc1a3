package io

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/antennamap/antennamap/pkg/errors"
)

func TestJSONRoundTrip(t *testing.T) {
	g, err := DefaultMap().Graph()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(g, path); err != nil {
		t.Fatal(err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Len() != g.Len() || got.EdgeCount() != g.EdgeCount() {
		t.Fatalf("round trip: %d/%d antennas, %d/%d edges", got.Len(), g.Len(), got.EdgeCount(), g.EdgeCount())
	}
	if !slices.Equal(got.Antennas(), g.Antennas()) {
		t.Error("antennas differ after round trip")
	}
	if !slices.Equal(got.Edges(), g.Edges()) {
		t.Error("edges differ after round trip")
	}
}

func TestWriteJSONShape(t *testing.T) {
	g, err := Map{Rows: 1, Cols: 3, Cells: [][]byte{[]byte("A.A")}}.Graph()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"antennas"`, `"freq": "A"`, `"x": 2`, `"from": 0`, `"to": 1`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %s:\n%s", want, buf.String())
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"malformed", `{"antennas": [`, errors.ErrCodeInvalidFormat},
		{"duplicate id", `{"antennas":[{"id":1,"freq":"A","x":0,"y":0},{"id":1,"freq":"A","x":1,"y":0}]}`, errors.ErrCodeInvalidFormat},
		{"long freq", `{"antennas":[{"id":1,"freq":"AB","x":0,"y":0}]}`, errors.ErrCodeInvalidFormat},
		{"duplicate position", `{"antennas":[{"id":1,"freq":"A","x":0,"y":0},{"id":2,"freq":"B","x":0,"y":0}]}`, errors.ErrCodeDuplicateAntenna},
		{"unknown endpoint", `{"antennas":[{"id":1,"freq":"A","x":0,"y":0}],"edges":[{"from":1,"to":9}]}`, errors.ErrCodeVertexNotFound},
		{"mixed frequencies", `{"antennas":[{"id":1,"freq":"A","x":0,"y":0},{"id":2,"freq":"B","x":1,"y":0}],"edges":[{"from":1,"to":2}]}`, errors.ErrCodeFrequencyMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.in)); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
