package render

import (
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/chart/scale"
)

// Colors used by a pass.
type Colors struct {
	Male      string
	Female    string
	Highlight string
}

// Labels used in the legend and tooltips.
type Labels struct {
	Male   string
	Female string
	Total  string // tooltip label for the raw count
	Rate   string // tooltip label for the total rate
}

// Options controls the chart geometry and text.
type Options struct {
	Margins        scale.Margins
	Padding        float64 // band padding
	Ticks          int     // approximate value-axis tick count
	Title          string
	Colors         Colors
	Labels         Labels
	HighlightWidth float64
	LegendSpacing  float64
}

// DefaultOptions returns the dashboard panel's settings.
func DefaultOptions() Options {
	return Options{
		Margins: scale.Margins{Top: 56, Right: 24, Bottom: 30, Left: 120},
		Padding: scale.DefaultPadding,
		Ticks:   6,
		Title:   "Gun Deaths by State (Per 100k)",
		Colors: Colors{
			Male:      "#3182bd",
			Female:    "#e6550d",
			Highlight: "#222",
		},
		Labels: Labels{
			Male:   "Male",
			Female: "Female",
			Total:  "Total deaths",
			Rate:   "Total Per 100k",
		},
		HighlightWidth: 2,
		LegendSpacing:  120,
	}
}

func (o Options) color(k data.Key) string {
	if k == data.KeyFemale {
		return o.Colors.Female
	}
	return o.Colors.Male
}

func (o Options) label(k data.Key) string {
	if k == data.KeyFemale {
		return o.Labels.Female
	}
	return o.Labels.Male
}
