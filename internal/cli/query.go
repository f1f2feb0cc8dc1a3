package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/internal/config"
	"github.com/antennamap/antennamap/pkg/antenna"
	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
	"github.com/antennamap/antennamap/pkg/pipeline"
)

// pointFlag resolves a coordinate flag, falling back to the configured cell.
func pointFlag(cmd *cobra.Command, name, value string, fallback *geom.Point) (geom.Point, error) {
	if cmd.Flags().Changed(name) {
		return config.ParsePoint(value)
	}
	if fallback == nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "--%s is required (no default configured)", name)
	}
	return *fallback, nil
}

// traverseCommand creates the dfs or bfs command.
func (c *CLI) traverseCommand(kind pipeline.Traversal) *cobra.Command {
	var at string
	name := strings.ToUpper(string(kind))

	cmd := &cobra.Command{
		Use:   string(kind) + " [map]",
		Short: fmt.Sprintf("List the antennas reached by a %s from one antenna", name),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer l.close()

			fallback := l.opts.DFSStart
			if kind == pipeline.BFS {
				fallback = l.opts.BFSStart
			}
			start, err := pointFlag(cmd, "at", at, fallback)
			if err != nil {
				return err
			}

			order, err := l.runner.Traverse(cmd.Context(), l.g, kind, start)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printInfo(w, "%s from %s visits %s antennas", name, start, StyleNumber.Render(strconv.Itoa(len(order))))
			for i, id := range order {
				printDetail(w, "%d. %s", i+1, formatIDs(l.g, []antenna.ID{id}, ""))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "start cell as x,y (default from config)")

	return cmd
}

// pathsCommand creates the paths command.
func (c *CLI) pathsCommand() *cobra.Command {
	var (
		from, to string
		limit    int
		pick     bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "paths [map]",
		Short: "Enumerate every simple path between two antennas",
		Long: `Enumerate every simple path between two antennas of the same frequency.

Endpoints come from --from and --to, the config file, or an interactive
picker with --pick. Results are cached per map content; use --refresh to
recompute them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer l.close()

			var src, dst geom.Point
			if pick {
				var ok bool
				if src, dst, ok, err = pickEndpoints(l.g); err != nil || !ok {
					if err == nil {
						printDetail(cmd.OutOrStdout(), "No selection made")
					}
					return err
				}
			} else {
				if src, err = pointFlag(cmd, "from", from, l.opts.PathFrom); err != nil {
					return err
				}
				if dst, err = pointFlag(cmd, "to", to, l.opts.PathTo); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("limit") {
				limit = l.opts.MaxPaths
			}

			spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Enumerating paths %s → %s", src, dst))
			spinner.Start()
			res, err := l.runner.Paths(cmd.Context(), l.g, pipeline.PathQuery{
				MapHash: pipeline.MapHash(l.m),
				From:    src,
				To:      dst,
				Limit:   limit,
				Refresh: refresh,
			})
			spinner.Stop()
			if err != nil {
				return err
			}
			c.Logger.Debug("paths enumerated", "count", res.Set.Count, "cached", res.CacheHit, "elapsed", spinner.Elapsed())

			w := cmd.OutOrStdout()
			printPaths(w, l.g, src, dst, res.Set.Paths, res.Truncated, nil)
			if res.CacheHit {
				printDetail(w, "%s", iconCached)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source cell as x,y (default from config)")
	cmd.Flags().StringVar(&to, "to", "", "destination cell as x,y (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after N paths (0 = no limit)")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose the endpoints interactively")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")

	return cmd
}

// pickEndpoints asks for a source antenna, then for a destination on the
// same frequency.
func pickEndpoints(g *antenna.Graph) (geom.Point, geom.Point, bool, error) {
	src, ok, err := pickAntenna("Select source antenna", g, nil)
	if err != nil || !ok {
		return geom.Point{}, geom.Point{}, false, err
	}
	dst, ok, err := pickAntenna("Select destination antenna", g, func(a antenna.Antenna) bool {
		return a.Freq == src.Freq
	})
	if err != nil || !ok {
		return geom.Point{}, geom.Point{}, false, err
	}
	return src.Pos, dst.Pos, true, nil
}

// intersectCommand creates the intersect command.
func (c *CLI) intersectCommand() *cobra.Command {
	var freqs string

	cmd := &cobra.Command{
		Use:   "intersect [map]",
		Short: "List the points where the links of two frequencies cross",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.open(cmd.Context(), args)
			if err != nil {
				return err
			}
			defer l.close()

			fa, fb := l.opts.FreqA, l.opts.FreqB
			if cmd.Flags().Changed("freqs") || fa == "" {
				if fa, fb, err = config.ParseFreqs(freqs); err != nil {
					return err
				}
			}
			a, _ := pipeline.ParseFrequency(fa)
			b, _ := pipeline.ParseFrequency(fb)

			res := l.runner.Intersections(cmd.Context(), l.g, a, b)

			w := cmd.OutOrStdout()
			printInfo(w, "Intersections between %s and %s: %s", a, b, StyleNumber.Render(strconv.Itoa(res.Count)))
			if res.Count == 0 {
				return nil
			}

			rows := make([][]string, 0, res.Count)
			for i, in := range res.Intersections {
				rows = append(rows, []string{strconv.Itoa(i + 1), in.Point.String(), in.A.String(), in.B.String()})
			}
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("#", "Point", a.String()+" link", b.String()+" link").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 1 {
						return StyleHighlight
					}
					return StyleValue
				})
			fmt.Fprintln(w, t.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&freqs, "freqs", pipeline.DefaultFreqA+","+pipeline.DefaultFreqB, "two frequencies as A,0 (default from config)")

	return cmd
}
