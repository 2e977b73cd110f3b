// Package pipeline runs the load → render → encode sequence shared by the
// CLI and the HTTP server.
//
// # Stages
//
//  1. Load: decode the state dataset from a file ([Runner.Load])
//  2. Render: run one chart pass on a fresh surface ([Runner.Execute])
//  3. Encode: serialize the pass into every requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(render.New(render.DefaultOptions(), nil, logger), logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Input:   "states.json",
//	    Brushed: "Texas",
//	    Formats: []string{"svg", "entries"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Every Execute works on its own surface, so a Runner can be shared between
// goroutines. Nothing is cached between runs.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/errors"
)

const (
	// DefaultWidth is the default surface width in pixels.
	DefaultWidth = 960.0

	// DefaultHeight is the default surface height in pixels.
	DefaultHeight = 640.0
)

// Output formats.
const (
	FormatSVG     = "svg"     // standalone SVG document
	FormatJSON    = "json"    // scene graph as JSON
	FormatEntries = "entries" // derived rows as JSON
	FormatDataset = "dataset" // input records, re-importable
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatJSON:    true,
	FormatEntries: true,
	FormatDataset: true,
}

// Options configures one pipeline run.
type Options struct {
	Input      string   `json:"input,omitempty"` // dataset path, used by Run
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Brushed    string   `json:"brushed,omitempty"`
	Title      string   `json:"title,omitempty"` // overrides the renderer's title
	NoTooltips bool     `json:"no_tooltips,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a run.
type Result struct {
	// Dataset is the input the pass was drawn from.
	Dataset *data.Dataset

	// Entries are the plotted rows in band order.
	Entries []data.Entry

	// Surface holds the drawn scene. Its bars keep their pointer handlers.
	Surface *canvas.Surface

	// Artifacts maps format to encoded output.
	Artifacts map[string][]byte

	Stats Stats
}

// Stats describes a run.
type Stats struct {
	Entries     int
	Highlighted bool
	RenderTime  time.Duration
	EncodeTime  time.Duration
}

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates o. Calling it more
// than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}
