package cli

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statebars/pkg/errors"
	"github.com/matzehuels/statebars/pkg/pipeline"
	"github.com/matzehuels/statebars/pkg/source"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single format) or base path
	formats    []string // svg, json, entries
	width      float64  // surface width in pixels, 0 uses the config
	height     float64  // surface height in pixels, 0 uses the config
	brushed    string   // state to highlight
	title      string   // title override
	noTooltips bool     // omit the embedded tooltip script
}

// formatExt maps output formats to file suffixes.
var formatExt = map[string]string{
	pipeline.FormatSVG:     ".svg",
	pipeline.FormatJSON:    ".scene.json",
	pipeline.FormatEntries: ".entries.json",
	pipeline.FormatDataset: ".dataset.json",
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [data.json]",
		Short: "Render the chart to SVG or JSON",
		Long: `Render the per-state chart for a dataset file or http(s) URL.

The dataset is the states payload ({"states": [...]}). By default a single
SVG with embedded hover tooltips is written next to the input file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, entries, dataset (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "surface width (default from config, 960)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "surface height (default from config, 640)")
	cmd.Flags().StringVarP(&opts.brushed, "brushed", "b", "", "state to highlight")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().BoolVar(&opts.noTooltips, "no-tooltips", false, "omit hover tooltips from the SVG")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)

	width, height := opts.width, opts.height
	if width == 0 {
		width = cfg.Chart.Width
	}
	if height == 0 {
		height = cfg.Chart.Height
	}

	runner := c.newRunner(cfg)
	res, err := runner.Run(cmd.Context(), pipeline.Options{
		Input:      input,
		Width:      width,
		Height:     height,
		Formats:    opts.formats,
		Brushed:    opts.brushed,
		Title:      opts.title,
		NoTooltips: opts.noTooltips,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d states", res.Stats.Entries))

	paths := outputPaths(opts.output, input, opts.formats)
	for _, format := range opts.formats {
		path := paths[format]
		if err := writeOutput(path, res.Artifacts[format]); err != nil {
			return err
		}
		c.Logger.Debug("wrote output", "format", format, "path", path, "bytes", len(res.Artifacts[format]))
	}

	printSuccess("Rendered %s", filepath.Base(input))
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	printStats(res.Stats.Entries, opts.brushed, res.Stats.Highlighted)
	if opts.brushed != "" && !res.Stats.Highlighted {
		printWarning("%q is not in the dataset", opts.brushed)
	}
	printNextStep("Explore interactively", appName+" serve "+input)
	return nil
}

// basePath strips a known output extension from output, or derives the base
// from input when output is empty. Remote inputs are written to the working
// directory under the URL's last path element.
func basePath(output, input string) string {
	if output == "" {
		if source.IsRemote(input) {
			input = remoteName(input)
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, ext := range []string{".scene.json", ".entries.json", ".dataset.json", ".svg", ".json"} {
		if strings.HasSuffix(output, ext) {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func remoteName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "chart"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "chart"
	}
	return name
}

// outputPaths assigns a file to every format. A single format with an
// explicit output writes exactly there.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + formatExt[f]
	}
	return paths
}

func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
