// Package config loads antennamap settings from a TOML file.
//
// A config file names the map and the queries [pipeline.Runner.Execute]
// runs. Every key is optional and missing keys keep the built-in defaults
// from [Default]. A complete file:
//
//	[map]
//	path = "data/mapa.bin"
//	rows = 12
//	cols = 12
//
//	[queries]
//	dfs = "5,7"
//	bfs = "8,8"
//	from = "4,4"
//	to = "7,3"
//	freqs = "A,0"
//	max_paths = 0
//
// An empty coordinate or frequency list disables that query.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/antennamap/antennamap/pkg/errors"
	"github.com/antennamap/antennamap/pkg/geom"
	"github.com/antennamap/antennamap/pkg/pipeline"
)

const (
	appName = "antennamap"

	// LocalFile is the config file looked up in the working directory.
	LocalFile = appName + ".toml"
)

// Config is the decoded config file.
type Config struct {
	Map     Map     `toml:"map"`
	Queries Queries `toml:"queries"`
}

// Map selects the map file. Rows and Cols override the bounds used for the
// interference projection; zero means the size of the map.
type Map struct {
	Path string `toml:"path"`
	Rows int    `toml:"rows"`
	Cols int    `toml:"cols"`
}

// Queries holds the query cells as "x,y" strings.
type Queries struct {
	DFS      string `toml:"dfs"`
	BFS      string `toml:"bfs"`
	From     string `toml:"from"`
	To       string `toml:"to"`
	Freqs    string `toml:"freqs"`
	MaxPaths int    `toml:"max_paths"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Map: Map{Path: pipeline.DefaultMapPath},
		Queries: Queries{
			DFS:   FormatPoint(pipeline.DefaultDFSStart),
			BFS:   FormatPoint(pipeline.DefaultBFSStart),
			From:  FormatPoint(pipeline.DefaultPathFrom),
			To:    FormatPoint(pipeline.DefaultPathTo),
			Freqs: pipeline.DefaultFreqA + "," + pipeline.DefaultFreqB,
		},
	}
}

// Parse decodes TOML over the defaults. Unknown keys are an INVALID_FORMAT
// error so that typos do not pass silently.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Load reads the config at path. With an empty path it tries each of
// [SearchPaths] in turn and falls back to [Default]. The second result is
// the file actually read, empty when none was.
func Load(path string) (Config, string, error) {
	if path != "" {
		cfg, err := loadFile(path)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := loadFile(p)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, p, nil
	}
	return Default(), "", nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// SearchPaths lists the files [Load] tries when no path is given: the
// working directory first, then the user config directory
// ($XDG_CONFIG_HOME/antennamap/config.toml or ~/.config/antennamap/config.toml).
func SearchPaths() []string {
	paths := []string{LocalFile}
	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, appName, "config.toml"))
	}
	return paths
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// Options converts the config to pipeline options.
func (c Config) Options() (pipeline.Options, error) {
	opts := pipeline.Options{
		MapPath:  c.Map.Path,
		Rows:     c.Map.Rows,
		Cols:     c.Map.Cols,
		MaxPaths: c.Queries.MaxPaths,
	}

	var err error
	for _, f := range []struct {
		key string
		val string
		dst **geom.Point
	}{
		{"queries.dfs", c.Queries.DFS, &opts.DFSStart},
		{"queries.bfs", c.Queries.BFS, &opts.BFSStart},
		{"queries.from", c.Queries.From, &opts.PathFrom},
		{"queries.to", c.Queries.To, &opts.PathTo},
	} {
		if *f.dst, err = optionalPoint(f.val); err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", f.key)
		}
	}

	if c.Queries.Freqs != "" {
		if opts.FreqA, opts.FreqB, err = ParseFreqs(c.Queries.Freqs); err != nil {
			return pipeline.Options{}, err
		}
	}
	return opts, nil
}

func optionalPoint(s string) (*geom.Point, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	p, err := ParsePoint(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ParsePoint parses "x,y" into a point. Surrounding whitespace and
// parentheses are ignored, so "(5, 7)" is accepted too.
func ParsePoint(s string) (geom.Point, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q must be x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q: bad x", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "point %q: bad y", s)
	}
	return geom.Pt(x, y), nil
}

// FormatPoint is the inverse of [ParsePoint].
func FormatPoint(p geom.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParseFreqs splits "A,0" into its two frequencies and validates both.
func ParseFreqs(s string) (string, string, error) {
	a, b, ok := strings.Cut(s, ",")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return "", "", errors.New(errors.ErrCodeInvalidInput, "frequencies %q must be two symbols like A,0", s)
	}
	for _, f := range []string{a, b} {
		if _, err := pipeline.ParseFrequency(f); err != nil {
			return "", "", err
		}
	}
	return a, b, nil
}
