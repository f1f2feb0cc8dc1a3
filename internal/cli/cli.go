// Package cli implements the antennamap command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/antennamap/antennamap/internal/config"
	"github.com/antennamap/antennamap/pkg/buildinfo"
	"github.com/antennamap/antennamap/pkg/cache"
	"github.com/antennamap/antennamap/pkg/observability"
	"github.com/antennamap/antennamap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "antennamap"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath  string
	noCache     bool
	metricsFile string
	metrics     *observability.Metrics
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Antennamap analyses antenna maps as frequency graphs",
		Long: `Antennamap reads a grid of antennas, links every pair that shares a frequency,
and answers questions about the result: interference cells, DFS and BFS
reachability, every simple path between two antennas, and the points where
the links of two frequencies cross.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.installHooks()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.writeMetrics()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./antennamap.toml, then ~/.config/antennamap/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the path result cache")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.traverseCommand(pipeline.DFS))
	root.AddCommand(c.traverseCommand(pipeline.BFS))
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.intersectCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Observability
// =============================================================================

// installHooks routes pipeline events to the debug log and, with
// --metrics-file, to Prometheus metrics.
func (c *CLI) installHooks() {
	if c.metricsFile == "" {
		observability.SetLoadHooks(logHooks{})
		observability.SetQueryHooks(logHooks{})
		return
	}
	c.metrics = observability.NewMetrics()
	observability.SetLoadHooks(observability.MultiLoadHooks{logHooks{}, c.metrics})
	observability.SetQueryHooks(observability.MultiQueryHooks{logHooks{}, c.metrics})
}

func (c *CLI) writeMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := c.metrics.WriteTextfile(c.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	c.Logger.Debug("wrote metrics", "path", c.metricsFile)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	pathCache, err := newCache(c.noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheScope())
	return pipeline.NewRunner(pathCache, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/antennamap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions reads the config file and applies the optional map argument.
func (c *CLI) loadOptions(args []string) (pipeline.Options, error) {
	cfg, used, err := config.Load(c.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	if used != "" {
		c.Logger.Debug("using config", "path", used)
	}
	opts, err := cfg.Options()
	if err != nil {
		return pipeline.Options{}, err
	}
	if len(args) > 0 {
		opts.MapPath = args[0]
	}
	opts.Logger = c.Logger
	return opts, nil
}
