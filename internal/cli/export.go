package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/pkg/antenna"
	mapio "github.com/antennamap/antennamap/pkg/io"
	"github.com/antennamap/antennamap/pkg/pipeline"
	"github.com/antennamap/antennamap/pkg/render/nodelink"
)

const formatJSON = "json"

// validFormats is the set of supported export formats.
var validFormats = map[string]bool{
	formatJSON:         true,
	nodelink.FormatDOT: true,
	nodelink.FormatSVG: true,
	nodelink.FormatPDF: true,
	nodelink.FormatPNG: true,
}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output       string // output file, "-" or empty for stdout
	format       string // json, dot, svg, pdf or png
	detailed     bool   // label nodes with ID and position
	interference bool   // draw interference cells
	highlight    bool   // highlight the first configured path
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [map]",
		Short: "Export the graph as JSON or a node-link diagram",
		Long: `Export the antenna graph.

Formats:
  json   antennas and edges as a JSON document
  dot    Graphviz source with antennas pinned to their grid cells
  svg    diagram rendered with Graphviz
  pdf    diagram converted with rsvg-convert
  png    diagram converted with rsvg-convert`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = strings.ToLower(opts.format)
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be json, dot, svg, pdf or png)", opts.format)
			}

			l, err := c.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer l.close()

			data, err := c.export(cmd, l, opts)
			if err != nil {
				return err
			}

			if opts.output == "" || opts.output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return err
			}
			w := cmd.ErrOrStderr()
			printSuccess(w, "Exported %s", strings.ToUpper(opts.format))
			printFile(w, opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with ID and position (diagrams)")
	cmd.Flags().BoolVar(&opts.interference, "interference", false, "draw interference cells (diagrams)")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", false, "highlight the first path between the configured cells (diagrams)")

	return cmd
}

func (c *CLI) export(cmd *cobra.Command, l *loaded, opts exportOpts) ([]byte, error) {
	if opts.format == formatJSON {
		var buf bytes.Buffer
		if err := mapio.WriteJSON(l.g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	ctx := cmd.Context()
	nl := nodelink.Options{Detailed: opts.detailed}
	if opts.interference {
		nl.Interference = l.runner.Interference(ctx, l.g, l.bounds())
	}
	if opts.highlight && l.opts.PathFrom != nil {
		res, err := l.runner.Paths(ctx, l.g, pipeline.PathQuery{
			MapHash: pipeline.MapHash(l.m),
			From:    *l.opts.PathFrom,
			To:      *l.opts.PathTo,
			Limit:   1,
		})
		switch {
		case err != nil:
			c.Logger.Warn("no path to highlight", "error", err)
		case res.Set.Count > 0:
			nl.Path = []antenna.ID(res.Set.Paths[0])
		}
	}
	return nodelink.Render(ctx, l.g, opts.format, nl)
}
