package render

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/stack"
	"github.com/matzehuels/statebars/pkg/scene"
)

// TooltipLines returns the hover content for one bar segment: the state,
// its raw count, the segment's rate with its share of the total, and the
// total rate.
func TooltipLines(seg stack.Segment, key data.Key, o Options) []string {
	e := seg.Entry
	lines := []string{
		e.Name,
		fmt.Sprintf("%s: %d", o.Labels.Total, e.Total),
	}
	if e.Invalid {
		return append(lines,
			fmt.Sprintf("%s: n/a", o.label(key)),
			fmt.Sprintf("%s: n/a", o.Labels.Rate))
	}
	return append(lines,
		fmt.Sprintf("%s: %s (%.1f%%)", o.label(key), strconv.FormatFloat(e.Value(key), 'f', -1, 64), e.Share(key)),
		fmt.Sprintf("%s: %.2f", o.Labels.Rate, e.Per100k))
}

// bind attaches the tooltip handlers to a bar. Enter fills and shows the
// tip, move only repositions it, leave hides it.
func (r *Renderer) bind(rect *scene.Node, s *canvas.Surface, lines []string) {
	tip := s.Tip
	rect.On(scene.EventPointerEnter, func(e scene.PointerEvent) {
		if tip != nil {
			tip.SetLines(lines)
		}
		r.Control.MoveTTipEvent(tip, e)
	})
	rect.On(scene.EventPointerMove, func(e scene.PointerEvent) {
		r.Control.MoveTTipEvent(tip, e)
	})
	rect.On(scene.EventPointerLeave, func(scene.PointerEvent) {
		r.Control.HideTTip(tip)
	})
}
