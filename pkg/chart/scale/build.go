package scale

import (
	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/statebars/pkg/chart/data"
)

// MinInner is the smallest drawable width or height. Surfaces smaller than
// their margins are clamped to it instead of producing inverted ranges.
const MinInner = 10.0

// Margins reserve space around the plot area for axes, title and legend.
type Margins struct {
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Left   float64 `toml:"left"`
}

// Inner returns the plot area for a surface of the given size.
func (m Margins) Inner(width, height float64) (w, h float64) {
	return max(MinInner, width-m.Left-m.Right), max(MinInner, height-m.Top-m.Bottom)
}

// Scales holds everything a pass needs to place bars.
type Scales struct {
	X      Linear
	Y      Band
	Max    float64 // largest total rate
	InnerW float64
	InnerH float64
}

// Build computes the value and band scales for entries, which must already
// be sorted. The band order is the entry order.
func Build(entries []data.Entry, width, height float64, m Margins, padding float64) Scales {
	innerW, innerH := m.Inner(width, height)
	xMax := MaxRate(entries)
	return Scales{
		X:      NewLinear(0, xMax, 0, innerW),
		Y:      NewBand(data.Names(entries), 0, innerH, padding),
		Max:    xMax,
		InnerW: innerW,
		InnerH: innerH,
	}
}

// MaxRate returns the largest Per100k, or 0 for no entries.
func MaxRate(entries []data.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	rates := make([]float64, len(entries))
	for i := range entries {
		rates[i] = entries[i].Per100k
	}
	return floats.Max(rates)
}
