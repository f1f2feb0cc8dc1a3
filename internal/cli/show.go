package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/interference"
	mapio "github.com/antennamap/antennamap/pkg/io"
	"github.com/antennamap/antennamap/pkg/pipeline"
	"github.com/antennamap/antennamap/pkg/render"
)

// loaded is a map opened for a single command.
type loaded struct {
	opts   pipeline.Options
	runner *pipeline.Runner
	m      mapio.Map
	g      *antenna.Graph
}

// bounds returns the interference bounds: the config override or the map size.
func (l *loaded) bounds() interference.Bounds {
	if l.opts.Rows > 0 {
		return interference.Bounds{Rows: l.opts.Rows, Cols: l.opts.Cols}
	}
	return interference.Bounds{Rows: l.m.Rows, Cols: l.m.Cols}
}

func (l *loaded) close() {
	l.g.Release()
	l.runner.Close()
}

// open loads the config, builds a runner and reads the map.
func (c *CLI) open(ctx context.Context, args []string) (*loaded, error) {
	opts, err := c.loadOptions(args)
	if err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	runner, err := c.newRunner()
	if err != nil {
		return nil, err
	}
	m, g, created, err := runner.Load(ctx, opts.MapPath)
	if err != nil {
		runner.Close()
		return nil, err
	}
	if created {
		c.Logger.Warn("map was missing; wrote the default map", "path", opts.MapPath)
	}
	return &loaded{opts: opts, runner: runner, m: m, g: g}, nil
}

// showCommand creates the show command, which prints the graph and the map.
func (c *CLI) showCommand() *cobra.Command {
	var noInterference bool

	cmd := &cobra.Command{
		Use:   "show [map]",
		Short: "Print the adjacency list and the map with interference cells",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer l.close()

			w := cmd.OutOrStdout()
			if err := render.Adjacency(w, l.g); err != nil {
				return err
			}
			fmt.Fprintln(w)

			bounds := l.bounds()
			var cells interference.Cells
			if !noInterference {
				cells = l.runner.Interference(cmd.Context(), l.g, bounds)
			}
			printInfo(w, "Map %s (%dx%d)", l.opts.MapPath, bounds.Rows, bounds.Cols)
			printGrid(w, render.Grid(l.g, bounds, cells))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInterference, "no-interference", false, "do not mark interference cells")

	return cmd
}
