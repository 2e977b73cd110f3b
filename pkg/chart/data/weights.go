package data

import "maps"

// DefaultWeight is the visual weight of a state missing from the table.
const DefaultWeight = 5.0

// Weights maps state abbreviations to the "ease of drawing" attribute
// carried on every entry. A Weights value is never modified after
// construction; use [Weights.With] to derive a new table.
type Weights struct {
	m map[string]float64
}

// DefaultWeights is the table shipped with the dashboard.
var DefaultWeights = NewWeights(map[string]float64{
	"IL": 9,
	"AL": 2,
	"AK": 1,
	"AR": 3,
	"CA": 9.51,
	"CO": 0,
	"DE": 3.1,
	"DC": 1.3,
	"FL": 8.9,
	"GA": 3.9,
	"HI": 4.5,
	"ID": 4,
	"IN": 4.3,
	"IA": 4.1,
	"KS": 1.6,
	"KY": 7,
	"LA": 6.5,
	"MO": 5.5,
	"ME": 7.44,
	"MD": 10,
	"MA": 6.8,
	"MI": 9.7,
	"MN": 5.1,
	"MS": 3.8,
	"MT": 1.4,
	"NE": 1.9,
	"NV": .5,
	"NH": 3.7,
	"NJ": 9.1,
	"NM": .2,
	"NY": 8.7,
	"NC": 8.5,
	"ND": 2.3,
	"OH": 5.8,
	"OK": 6.05,
	"OR": 4.7,
	"PA": 4.01,
	"RI": 8.4,
	"SC": 7.1,
	"SD": .9,
	"TN": 3.333333,
	"TX": 8.1,
	"UT": 2.8,
	"VT": 2.6,
	"VA": 8.2,
	"WA": 9.2,
	"WV": 7.9,
	"WY": 0,
})

// NewWeights copies m into a new table.
func NewWeights(m map[string]float64) Weights {
	return Weights{m: maps.Clone(m)}
}

// Lookup returns the weight for abbrev, or [DefaultWeight] when absent.
func (w Weights) Lookup(abbrev string) float64 {
	if v, ok := w.m[abbrev]; ok {
		return v
	}
	return DefaultWeight
}

// With returns a table with overrides layered on top of w.
func (w Weights) With(overrides map[string]float64) Weights {
	m := maps.Clone(w.m)
	if m == nil {
		m = make(map[string]float64, len(overrides))
	}
	maps.Copy(m, overrides)
	return Weights{m: m}
}

// Len returns the number of explicit entries.
func (w Weights) Len() int { return len(w.m) }

// All returns a copy of the table.
func (w Weights) All() map[string]float64 { return maps.Clone(w.m) }
