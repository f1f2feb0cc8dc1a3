package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/errors"
)

// ReadJSON decodes a node-link JSON graph from r.
//
// Each antenna needs a unique "id", a one-character "freq" and its "x" and
// "y" cell. Each edge names two antenna ids in "from" and "to".
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - An antenna has a duplicate id or position, or an invalid frequency
//   - An edge references an unknown id or joins two frequencies
//
// Edges are added exactly as listed; no clique pass runs on import.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*antenna.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}

	g := antenna.New()
	ids := make(map[int]antenna.ID, len(data.Antennas))
	for _, n := range data.Antennas {
		if _, dup := ids[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "duplicate antenna id %d", n.ID)
		}
		if len(n.Freq) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "antenna %d: frequency %q is not one character", n.ID, n.Freq)
		}
		id, err := g.AddAntenna(antenna.Frequency(n.Freq[0]), n.X, n.Y)
		if err != nil {
			return nil, fmt.Errorf("antenna %d: %w", n.ID, err)
		}
		ids[n.ID] = id
	}
	for _, e := range data.Edges {
		u, ok := ids[e.From]
		if !ok {
			u = antenna.NoID
		}
		v, ok := ids[e.To]
		if !ok {
			v = antenna.NoID
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("edge %d-%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
// A missing file is a FILE_NOT_FOUND error.
func ImportJSON(path string) (*antenna.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
