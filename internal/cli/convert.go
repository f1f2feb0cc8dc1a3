package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/pkg/antenna"
	mapio "github.com/antennamap/antennamap/pkg/io"
)

// convertCommand creates the convert command, which rewrites a map in
// another format. The format of each side follows its extension: .bin is
// binary, .json is the graph export, anything else is text.
func (c *CLI) convertCommand() *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a map between the binary, text and JSON formats",
		Long: `Convert a map between formats, chosen by extension:

  .bin    binary grid (int32 rows, int32 cols, then one byte per cell)
  .json   antennas and edges
  other   text grid, one row per line

A JSON input has no grid size; it defaults to the smallest grid holding
every antenna unless --rows and --cols are given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			g, m, err := readAny(in, rows, cols)
			if err != nil {
				return err
			}
			defer g.Release()

			if isJSON(out) {
				err = mapio.ExportJSON(g, out)
			} else {
				err = mapio.Save(out, m)
			}
			if err != nil {
				return err
			}
			c.Logger.Debug("converted map", "from", in, "to", out, "antennas", g.Len())

			w := cmd.OutOrStdout()
			printSuccess(w, "Converted %d antennas", g.Len())
			printFile(w, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows for JSON input")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns for JSON input")

	return cmd
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// readAny loads a map file of any supported format as both graph and grid.
func readAny(path string, rows, cols int) (*antenna.Graph, mapio.Map, error) {
	if !isJSON(path) {
		m, err := mapio.Load(path)
		if err != nil {
			return nil, mapio.Map{}, err
		}
		g, err := m.Graph()
		if err != nil {
			return nil, mapio.Map{}, err
		}
		return g, m, nil
	}

	g, err := mapio.ImportJSON(path)
	if err != nil {
		return nil, mapio.Map{}, err
	}
	if rows == 0 && cols == 0 {
		for _, a := range g.Antennas() {
			rows = max(rows, a.Pos.Y+1)
			cols = max(cols, a.Pos.X+1)
		}
	}
	m, err := mapio.FromGraph(g, rows, cols)
	if err != nil {
		return nil, mapio.Map{}, err
	}
	return g, m, nil
}
