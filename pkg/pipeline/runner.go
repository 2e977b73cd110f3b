package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/render"
	"github.com/matzehuels/statebars/pkg/errors"
	dataio "github.com/matzehuels/statebars/pkg/io"
	"github.com/matzehuels/statebars/pkg/source"
)

// Runner executes pipeline runs with a shared renderer.
type Runner struct {
	Renderer *render.Renderer
	Logger   *log.Logger
	Source   *source.Client // used for http(s) inputs
}

// NewRunner returns a runner. A nil renderer uses the default options.
func NewRunner(r *render.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if r == nil {
		r = render.New(render.DefaultOptions(), nil, logger)
	}
	return &Runner{Renderer: r, Logger: logger, Source: source.NewClient()}
}

// Load reads the dataset at path, which is a local file or an http(s) URL.
func (r *Runner) Load(ctx context.Context, path string) (*data.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, err, "load")
	}
	start := time.Now()
	var (
		ds  *data.Dataset
		err error
	)
	if source.IsRemote(path) {
		ds, err = r.Source.Fetch(ctx, path)
	} else {
		ds, err = dataio.ImportJSON(path)
	}
	if err != nil {
		return nil, err
	}
	r.Logger.Info("loaded dataset",
		"path", path,
		"states", len(ds.States),
		"duration", time.Since(start))
	return ds, nil
}

// Run loads opts.Input and executes the render and encode stages on it.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	ds, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, ds, opts)
}

// Execute renders ds on a fresh surface and encodes it in every requested
// format. Stage logs go to opts.Logger, or the runner's logger when unset.
func (r *Runner) Execute(ctx context.Context, ds *data.Dataset, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no dataset")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, err, "render")
	}

	logger := opts.Logger
	renderer := r.rendererFor(opts)
	result := &Result{Dataset: ds, Artifacts: make(map[string][]byte)}

	renderStart := time.Now()
	provider := canvas.NewFixed(opts.Width, opts.Height)
	chart := render.NewChart(renderer, provider)
	chart.Update(ds, opts.Brushed)
	if chart.State() != render.StateDrawing {
		return nil, errors.New(errors.ErrCodeInternal, "chart did not draw")
	}
	result.Surface = chart.Surface()
	result.Entries = data.Prepare(ds.States, renderer.Weights)
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Entries = len(result.Entries)
	result.Stats.Highlighted = len(result.Surface.Root.FindAll("highlight")) > 0

	logger.Debug("rendered chart",
		"entries", result.Stats.Entries,
		"brushed", opts.Brushed,
		"highlighted", result.Stats.Highlighted,
		"duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCanceled, err, "encode")
	}

	encodeStart := time.Now()
	for _, format := range opts.Formats {
		out, err := Encode(format, result, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
		}
		result.Artifacts[format] = out
	}
	result.Stats.EncodeTime = time.Since(encodeStart)

	logger.Debug("encoded outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// rendererFor applies per-run overrides on a copy of the shared renderer.
func (r *Runner) rendererFor(opts Options) *render.Renderer {
	if opts.Title == "" {
		return r.Renderer
	}
	rr := *r.Renderer
	rr.Options.Title = opts.Title
	return &rr
}
