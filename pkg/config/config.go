// Package config loads statebars settings from a TOML file.
//
// A config file overrides the built-in chart defaults, the visual-weight
// table and the server address. Every key is optional:
//
//	[chart]
//	title  = "Gun Deaths by State (Per 100k)"
//	width  = 960
//	height = 640
//	ticks  = 6
//
//	[chart.margins]
//	top = 56
//	left = 140
//
//	[chart.colors]
//	male   = "#3182bd"
//	female = "#e6550d"
//
//	[weights]
//	MN = 5.1
//
//	[server]
//	addr = ":8080"
//
// Command-line flags take precedence over the file.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/render"
	"github.com/matzehuels/statebars/pkg/chart/scale"
	"github.com/matzehuels/statebars/pkg/errors"
)

const (
	appName  = "statebars"
	fileName = "config.toml"

	// DefaultAddr is the server listen address.
	DefaultAddr = ":8080"
)

// Config is the decoded file.
type Config struct {
	Chart   Chart              `toml:"chart"`
	Weights map[string]float64 `toml:"weights"`
	Server  Server             `toml:"server"`
}

// Chart holds chart appearance settings.
type Chart struct {
	Title   string        `toml:"title"`
	Width   float64       `toml:"width"`
	Height  float64       `toml:"height"`
	Ticks   int           `toml:"ticks"`
	Padding float64       `toml:"padding"`
	Margins scale.Margins `toml:"margins"`
	Colors  Colors        `toml:"colors"`
	Labels  Labels        `toml:"labels"`
}

// Colors are hex fill and stroke colors.
type Colors struct {
	Male      string `toml:"male"`
	Female    string `toml:"female"`
	Highlight string `toml:"highlight"`
}

// Labels are legend and tooltip texts.
type Labels struct {
	Male   string `toml:"male"`
	Female string `toml:"female"`
	Total  string `toml:"total"`
	Rate   string `toml:"rate"`
}

// Server holds HTTP settings.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	o := render.DefaultOptions()
	return &Config{
		Chart: Chart{
			Title:   o.Title,
			Width:   960,
			Height:  640,
			Ticks:   o.Ticks,
			Padding: o.Padding,
			Margins: o.Margins,
			Colors: Colors{
				Male:      o.Colors.Male,
				Female:    o.Colors.Female,
				Highlight: o.Colors.Highlight,
			},
			Labels: Labels{
				Male:   o.Labels.Male,
				Female: o.Labels.Female,
				Total:  o.Labels.Total,
				Rate:   o.Labels.Rate,
			},
		},
		Server: Server{Addr: DefaultAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/statebars/config.toml, falling back
// to ~/.config/statebars/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of [Default]. An empty path means
// [DefaultPath]. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate %s", path)
	}
	return cfg, nil
}

// Validate checks colors, dimensions and weights.
func (c *Config) Validate() error {
	for _, col := range []string{c.Chart.Colors.Male, c.Chart.Colors.Female, c.Chart.Colors.Highlight} {
		if err := errors.ValidateColor(col); err != nil {
			return err
		}
	}
	if err := errors.ValidateDimensions(c.Chart.Width, c.Chart.Height); err != nil {
		return err
	}
	if c.Chart.Ticks < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "ticks must not be negative")
	}
	if c.Chart.Padding < 0 || c.Chart.Padding >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must be in [0, 1)")
	}
	for _, k := range slices.Sorted(maps.Keys(c.Weights)) {
		if v := c.Weights[k]; v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "weight for %s must not be negative", k)
		}
	}
	return nil
}

// RenderOptions projects the chart section into renderer options.
func (c *Config) RenderOptions() render.Options {
	o := render.DefaultOptions()
	ch := c.Chart
	o.Title = ch.Title
	o.Ticks = ch.Ticks
	o.Padding = ch.Padding
	o.Margins = ch.Margins
	o.Colors = render.Colors{Male: ch.Colors.Male, Female: ch.Colors.Female, Highlight: ch.Colors.Highlight}
	o.Labels = render.Labels{Male: ch.Labels.Male, Female: ch.Labels.Female, Total: ch.Labels.Total, Rate: ch.Labels.Rate}
	return o
}

// DataWeights returns the default weight table with the file's overrides.
// Abbreviations are matched case-insensitively.
func (c *Config) DataWeights() data.Weights {
	if len(c.Weights) == 0 {
		return data.DefaultWeights
	}
	overrides := make(map[string]float64, len(c.Weights))
	for k, v := range c.Weights {
		overrides[strings.ToUpper(k)] = v
	}
	return data.DefaultWeights.With(overrides)
}
