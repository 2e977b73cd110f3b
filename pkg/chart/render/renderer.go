package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/scale"
	"github.com/matzehuels/statebars/pkg/chart/stack"
	"github.com/matzehuels/statebars/pkg/observability"
	"github.com/matzehuels/statebars/pkg/scene"
	"github.com/matzehuels/statebars/pkg/tooltip"
)

// Input holds the data-side dependencies of a pass.
type Input struct {
	Data    *data.Dataset // nil while the source is still loading
	Brushed string        // state selected in a sibling view, may be empty
}

// Renderer draws full chart passes.
type Renderer struct {
	Options Options
	Control tooltip.Control
	Weights data.Weights
	Logger  *log.Logger
}

// New returns a renderer using the default weight table. A nil control
// falls back to [tooltip.DefaultFollow] and a nil logger discards output.
func New(opts Options, ctl tooltip.Control, logger *log.Logger) *Renderer {
	if ctl == nil {
		ctl = tooltip.DefaultFollow
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Renderer{
		Options: opts,
		Control: ctl,
		Weights: data.DefaultWeights,
		Logger:  logger,
	}
}

// Draw runs one pass on s and reports whether anything was drawn. Without a
// surface or data it leaves s untouched.
func (r *Renderer) Draw(s *canvas.Surface, in Input) bool {
	hooks := observability.Render()
	if s == nil || s.Root == nil {
		hooks.OnRenderSkipped("no-surface")
		return false
	}
	if in.Data == nil {
		hooks.OnRenderSkipped("no-data")
		return false
	}

	start := time.Now()
	hooks.OnRenderStart(len(in.Data.States), s.Width, s.Height)

	s.Root.Clear()

	entries := data.Prepare(in.Data.States, r.Weights)
	r.warnInvalid(entries)

	o := r.Options
	sc := scale.Build(entries, s.Width, s.Height, o.Margins, o.Padding)
	layers := stack.Stack(entries, data.Keys)

	g := s.Root.Append(scene.KindGroup).Class("plot").
		Attr("transform", translate(o.Margins.Left, o.Margins.Top))

	r.drawBars(g, s, sc, layers)
	drawTopAxis(g, sc.X, o.Ticks)
	drawLeftAxis(g, sc.Y)
	r.drawTitle(s.Root, s.Width, sc.InnerW)
	r.drawLegend(s.Root)
	highlighted := r.drawHighlight(g, sc, in.Brushed)

	elapsed := time.Since(start)
	r.Logger.Debug("rendered chart",
		"entries", len(entries),
		"width", s.Width,
		"height", s.Height,
		"brushed", in.Brushed,
		"highlighted", highlighted,
		"duration", elapsed)
	hooks.OnRenderComplete(len(entries), highlighted, elapsed)
	return true
}

func (r *Renderer) warnInvalid(entries []data.Entry) {
	for i := range entries {
		if entries[i].Invalid {
			r.Logger.Warn("unusable population, drawing zero rates",
				"state", entries[i].Name,
				"abbrev", entries[i].Abbrev,
				"population", entries[i].Population)
		}
	}
}

func translate(x, y float64) string {
	return fmt.Sprintf("translate(%s,%s)", scene.FormatFloat(x), scene.FormatFloat(y))
}
