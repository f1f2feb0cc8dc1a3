package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/antenna/search"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
	"github.com/antennamap/antennamap/pkg/pipeline"
	"github.com/antennamap/antennamap/pkg/render"
)

// runCommand creates the run command, which executes the whole query sequence.
func (c *CLI) runCommand() *cobra.Command {
	var (
		limit   int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "run [map]",
		Short: "Load a map and run every configured query",
		Long: `Load a map and run the configured query sequence: interference, DFS, BFS,
path enumeration and frequency intersections.

The map defaults to data/mapa.bin and is created with the sample map when
missing. Query cells come from the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				opts.MaxPaths = limit
			}
			opts.Refresh = refresh

			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			res, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done("Queries complete")

			printReport(cmd.OutOrStdout(), opts, res)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop path enumeration after N paths (0 = no limit)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached path results")

	return cmd
}

// printReport writes every section of a pipeline result.
func printReport(w io.Writer, opts pipeline.Options, res *pipeline.Result) {
	g := res.Graph

	printKeyValue(w, "Map", opts.MapPath)
	printKeyValue(w, "Size", fmt.Sprintf("%dx%d", res.Map.Rows, res.Map.Cols))
	if res.Created {
		printDetail(w, "map was missing; wrote the default map")
	}
	printStats(w, res.Stats.Antennas, res.Stats.Edges, res.CacheInfo.PathsHit)
	fmt.Fprintln(w)

	_ = render.Adjacency(w, g)
	fmt.Fprintln(w)

	printInfo(w, "Map with interference (%s cells)", StyleNumber.Render(fmt.Sprint(res.Interference.Len())))
	printGrid(w, render.Grid(g, res.Bounds, res.Interference))
	fmt.Fprintln(w)

	printTraversal(w, g, "DFS", opts.DFSStart, res.DFS)
	printTraversal(w, g, "BFS", opts.BFSStart, res.BFS)

	if opts.PathFrom != nil {
		printPaths(w, g, *opts.PathFrom, *opts.PathTo, res.Paths.Paths, res.PathsTruncated, res.PathErr)
	}

	if opts.FreqA != "" {
		printInfo(w, "Intersections between %s and %s: %s",
			opts.FreqA, opts.FreqB, StyleNumber.Render(fmt.Sprint(res.Intersections.Count)))
		for _, in := range res.Intersections.Intersections {
			printDetail(w, "%s", in)
		}
	}
}

func printTraversal(w io.Writer, g *antenna.Graph, kind string, start *geom.Point, order []antenna.ID) {
	if start == nil {
		return
	}
	if len(order) == 0 {
		printWarning(w, "%s from %s skipped: no antenna there", kind, start)
		return
	}
	printInfo(w, "%s from %s: %s", kind, start, formatIDs(g, order, " "))
}

func printPaths(w io.Writer, g *antenna.Graph, from, to geom.Point, paths []search.Path, truncated bool, pathErr error) {
	if pathErr != nil {
		printWarning(w, "Paths %s to %s: %s", from, to, errors.UserMessage(pathErr))
		return
	}
	printInfo(w, "Paths from %s to %s: %s", from, to, StyleNumber.Render(fmt.Sprint(len(paths))))
	for i, p := range paths {
		printDetail(w, "%d. %s", i+1, formatPath(g, p))
	}
	if truncated {
		printWarning(w, "stopped after %d paths", len(paths))
	}
}
