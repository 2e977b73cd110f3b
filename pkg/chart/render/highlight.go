package render

import (
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/scale"
	"github.com/matzehuels/statebars/pkg/scene"
)

// drawHighlight outlines the brushed state's band across the full value
// range. It draws nothing when brushed is empty or not in the band domain.
func (r *Renderer) drawHighlight(g *scene.Node, sc scale.Scales, brushed string) bool {
	if brushed == "" {
		return false
	}
	name := data.NormalizeName(brushed)
	y, ok := sc.Y.Map(name)
	if !ok {
		return false
	}
	g.Append(scene.KindRect).Class("highlight").
		Attr("x", 0).
		Attr("y", y).
		Attr("width", sc.X.Map(sc.Max)).
		Attr("height", sc.Y.Bandwidth()).
		Attr("fill", "none").
		Attr("stroke", r.Options.Colors.Highlight).
		Attr("stroke-width", r.Options.HighlightWidth).
		Attr("pointer-events", "none").
		Attr("data-state", name)
	return true
}
