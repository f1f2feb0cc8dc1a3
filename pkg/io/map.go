package io

import (
	"bufio"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
)

// Empty is the symbol of a cell without an antenna.
const Empty = errors.EmptyCell

// Map is a decoded map grid. Cells[y][x] is the cell at column x, row y.
type Map struct {
	Rows  int
	Cols  int
	Cells [][]byte
}

// NewMap returns a rows×cols map with every cell empty.
func NewMap(rows, cols int) (Map, error) {
	if err := errors.ValidateDimensions(rows, cols); err != nil {
		return Map{}, err
	}
	m := Map{Rows: rows, Cols: cols, Cells: make([][]byte, rows)}
	for y := range m.Cells {
		m.Cells[y] = []byte(strings.Repeat(string(Empty), cols))
	}
	return m, nil
}

var defaultRows = []string{
	"............",
	"............",
	"............",
	".......0....",
	"....0.......",
	"......A.....",
	".........0..",
	".....0......",
	"........A...",
	"............",
	".......A....",
	"............",
}

// DefaultMap returns the 12×12 sample map with four '0' and three 'A'
// antennas.
func DefaultMap() Map {
	m := Map{Rows: len(defaultRows), Cols: len(defaultRows[0]), Cells: make([][]byte, len(defaultRows))}
	for y, row := range defaultRows {
		m.Cells[y] = []byte(row)
	}
	return m
}

// At returns the cell at (x, y), or Empty outside the map.
func (m Map) At(x, y int) byte {
	if y < 0 || y >= m.Rows || x < 0 || x >= m.Cols {
		return Empty
	}
	return m.Cells[y][x]
}

// Graph builds the antenna graph of m. Antennas are added in row-major
// order and then connected within each frequency.
func (m Map) Graph() (*antenna.Graph, error) {
	g := antenna.New()
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			c := m.Cells[y][x]
			if c == Empty {
				continue
			}
			if _, err := g.AddAntenna(antenna.Frequency(c), x, y); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidMap, err, "cell (%d,%d)", x, y)
			}
		}
	}
	g.Connect()
	return g, nil
}

// FromGraph draws the antennas of g onto an empty rows×cols map. Antennas
// outside the grid are an INVALID_MAP error naming the first of them.
func FromGraph(g *antenna.Graph, rows, cols int) (Map, error) {
	m, err := NewMap(rows, cols)
	if err != nil {
		return Map{}, err
	}
	inside := g.Within(geom.Pt(0, 0), geom.Pt(cols-1, rows-1))
	if len(inside) != g.Len() {
		for i, a := range g.Antennas() {
			if i >= len(inside) || inside[i] != a.ID {
				return Map{}, errors.New(errors.ErrCodeInvalidMap, "antenna %s lies outside a %dx%d map", a, rows, cols)
			}
		}
	}
	for _, id := range inside {
		a, _ := g.Antenna(id)
		m.Cells[a.Pos.Y][a.Pos.X] = byte(a.Freq)
	}
	return m, nil
}

func (m Map) check() error {
	if err := errors.ValidateDimensions(m.Rows, m.Cols); err != nil {
		return err
	}
	if len(m.Cells) != m.Rows {
		return errors.New(errors.ErrCodeInvalidMap, "map has %d rows, header says %d", len(m.Cells), m.Rows)
	}
	for y, row := range m.Cells {
		if len(row) != m.Cols {
			return errors.New(errors.ErrCodeInvalidMap, "row %d has %d cells, want %d", y, len(row), m.Cols)
		}
		for x, c := range row {
			if c == Empty {
				continue
			}
			if err := errors.ValidateFrequency(c); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidMap, err, "cell (%d,%d)", x, y)
			}
		}
	}
	return nil
}

// ReadBinary decodes a binary map from r.
func ReadBinary(r io.Reader) (Map, error) {
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Map{}, errors.Wrap(errors.ErrCodeInvalidMap, err, "read header")
	}
	rows, cols := int(hdr[0]), int(hdr[1])
	if err := errors.ValidateDimensions(rows, cols); err != nil {
		return Map{}, err
	}

	m := Map{Rows: rows, Cols: cols, Cells: make([][]byte, rows)}
	for y := range m.Cells {
		row := make([]byte, cols)
		if _, err := io.ReadFull(r, row); err != nil {
			return Map{}, errors.Wrap(errors.ErrCodeInvalidMap, err, "read row %d", y)
		}
		m.Cells[y] = row
	}
	if err := m.check(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// WriteBinary encodes m in the binary format.
func WriteBinary(w io.Writer, m Map) error {
	if err := m.check(); err != nil {
		return err
	}
	hdr := [2]int32{int32(m.Rows), int32(m.Cols)}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for y, row := range m.Cells {
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return nil
}

// ReadText decodes a text map from r. Trailing blank lines are ignored and
// carriage returns are stripped.
func ReadText(r io.Reader) (Map, error) {
	var rows [][]byte
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []byte(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return Map{}, errors.Wrap(errors.ErrCodeInvalidMap, err, "read text map")
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return Map{}, errors.New(errors.ErrCodeInvalidMap, "map is empty")
	}

	m := Map{Rows: len(rows), Cols: len(rows[0]), Cells: rows}
	if err := m.check(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// WriteText encodes m in the text format.
func WriteText(w io.Writer, m Map) error {
	if err := m.check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, row := range m.Cells {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// IsBinary reports whether path names a binary map.
func IsBinary(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".bin")
}

// Load reads the map at path, choosing the format by extension.
func Load(path string) (Map, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Map{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Map{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "map %s", path)
		}
		return Map{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var m Map
	if IsBinary(path) {
		m, err = ReadBinary(f)
	} else {
		m, err = ReadText(f)
	}
	if err != nil {
		return Map{}, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// Save writes m to path, choosing the format by extension. Parent
// directories are created as needed.
func Save(path string, m Map) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if IsBinary(path) {
		err = WriteBinary(f, m)
	} else {
		err = WriteText(f, m)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// LoadOrCreate loads the map at path. When the file does not exist it first
// writes DefaultMap there. created reports whether that happened.
func LoadOrCreate(path string) (m Map, created bool, err error) {
	m, err = Load(path)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		return m, false, err
	}
	if err := Save(path, DefaultMap()); err != nil {
		return Map{}, false, err
	}
	m, err = Load(path)
	return m, err == nil, err
}
