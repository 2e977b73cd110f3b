// Package cli implements the statebars command-line interface.
//
// # Commands
//
//   - render: draw the chart for a dataset file to SVG or JSON
//   - serve: serve the interactive chart over HTTP
//   - inspect: browse the ranked states in the terminal and brush one
//   - weights: print the visual-weight table
//   - completion: generate shell completion scripts
//
// All commands accept --verbose (-v) for debug logging and --config to
// point at a TOML settings file.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statebars/pkg/buildinfo"
	"github.com/matzehuels/statebars/pkg/chart/render"
	"github.com/matzehuels/statebars/pkg/config"
	"github.com/matzehuels/statebars/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "statebars"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w.
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
		Use:          appName,
		Short:        "Statebars charts gun deaths per 100k by state",
		Long:         `Statebars draws a stacked horizontal bar chart of gun deaths per 100k residents for each state, split into male and female rates, with hover tooltips and highlighting of a selected state.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/statebars/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.weightsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "title", cfg.Chart.Title)
	return cfg, nil
}

// newRenderer builds a renderer from the config.
func (c *CLI) newRenderer(cfg *config.Config) *render.Renderer {
	r := render.New(cfg.RenderOptions(), nil, c.Logger)
	r.Weights = cfg.DataWeights()
	return r
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cfg *config.Config) *pipeline.Runner {
	return pipeline.NewRunner(c.newRenderer(cfg), c.Logger)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
