package render

import (
	"strings"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/scale"
	"github.com/matzehuels/statebars/pkg/chart/stack"
	"github.com/matzehuels/statebars/pkg/scene"
)

const (
	tickSize    = 6
	tickPadding = 3
	swatchSize  = 14
	legendGap   = 34 // legend and title sit this far above the plot
)

// drawBars appends one group per layer, in stacking order, with a rect per
// entry and its pointer handlers.
func (r *Renderer) drawBars(g *scene.Node, s *canvas.Surface, sc scale.Scales, layers []stack.Layer) {
	bw := sc.Y.Bandwidth()
	for _, layer := range layers {
		lg := g.Append(scene.KindGroup).Class("layer").Attr("fill", r.Options.color(layer.Key))
		for _, seg := range layer.Segments {
			y, _ := sc.Y.Map(seg.Entry.Name)
			x0, x1 := sc.X.Map(seg.Start), sc.X.Map(seg.End)
			lines := TooltipLines(seg, layer.Key, r.Options)
			rect := lg.Append(scene.KindRect).Class("bar "+string(layer.Key)).
				Attr("x", x0).
				Attr("y", y).
				Attr("height", bw).
				Attr("width", x1-x0).
				Attr("data-state", seg.Entry.Name).
				Attr("data-tip", strings.Join(lines, "\n"))
			r.bind(rect, s, lines)
		}
	}
}

// drawTopAxis draws the value axis along the top edge of the plot.
func drawTopAxis(g *scene.Node, x scale.Linear, count int) {
	ax := g.Append(scene.KindGroup).Class("x-axis").
		Attr("fill", "none").
		Attr("font-size", 10).
		Attr("font-family", "sans-serif").
		Attr("text-anchor", "middle")
	ax.Append(scene.KindLine).Class("domain").
		Attr("stroke", "currentColor").
		Attr("x1", x.Range[0]).Attr("x2", x.Range[1]).
		Attr("y1", 0).Attr("y2", 0)

	format := x.TickFormat(count)
	for _, v := range x.Ticks(count) {
		tick := ax.Append(scene.KindGroup).Class("tick").
			Attr("transform", translate(x.Map(v), 0))
		tick.Append(scene.KindLine).Attr("stroke", "currentColor").Attr("y2", -tickSize)
		tick.Append(scene.KindText).
			Attr("fill", "currentColor").
			Attr("y", -(tickSize + tickPadding)).
			Attr("dy", "0em").
			SetText(format(v))
	}
}

// drawLeftAxis draws one tick per state, centered on its band.
func drawLeftAxis(g *scene.Node, y scale.Band) {
	r0, r1 := y.Range()
	ax := g.Append(scene.KindGroup).Class("y-axis").
		Attr("fill", "none").
		Attr("font-size", 10).
		Attr("font-family", "sans-serif").
		Attr("text-anchor", "end")
	ax.Append(scene.KindLine).Class("domain").
		Attr("stroke", "currentColor").
		Attr("x1", 0).Attr("x2", 0).
		Attr("y1", r0).Attr("y2", r1)

	half := y.Bandwidth() / 2
	for _, name := range y.Domain() {
		pos, _ := y.Map(name)
		tick := ax.Append(scene.KindGroup).Class("tick").
			Attr("transform", translate(0, pos+half))
		tick.Append(scene.KindLine).Attr("stroke", "currentColor").Attr("x2", -tickSize)
		tick.Append(scene.KindText).
			Attr("fill", "currentColor").
			Attr("x", -(tickSize + tickPadding)).
			Attr("dy", "0.32em").
			SetText(name)
	}
}

func (r *Renderer) drawTitle(root *scene.Node, width, innerW float64) {
	m := r.Options.Margins
	root.Append(scene.KindText).Class("title").
		Attr("x", m.Left+innerW/2).
		Attr("y", max(20, m.Top-legendGap)).
		Attr("text-anchor", "middle").
		Attr("font-size", min(18, max(12, width*0.02))).
		Attr("font-weight", "bold").
		SetText(r.Options.Title)
}

func (r *Renderer) drawLegend(root *scene.Node) {
	m := r.Options.Margins
	legend := root.Append(scene.KindGroup).Class("legend").
		Attr("transform", translate(m.Left, m.Top-legendGap))
	for i, k := range data.Keys {
		item := legend.Append(scene.KindGroup).Class("lg").
			Attr("transform", translate(float64(i)*r.Options.LegendSpacing, 0))
		item.Append(scene.KindRect).
			Attr("x", 0).Attr("y", -12).
			Attr("width", swatchSize).Attr("height", swatchSize).
			Attr("fill", r.Options.color(k))
		item.Append(scene.KindText).
			Attr("x", 20).Attr("y", -3).
			Attr("dominant-baseline", "middle").
			Attr("font-size", 12).
			SetText(r.Options.label(k))
	}
}
