package scale

import "math"

// DefaultPadding is the fraction of each step left empty between bands and
// at both ends of the range.
const DefaultPadding = 0.15

// Band assigns each domain value a contiguous, equally sized slice of the
// range. Inner and outer padding are equal and the bands are centered.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64
	step    float64
	start   float64
	reverse bool
}

// NewBand builds a band scale over domain. Duplicate names keep their first
// position.
func NewBand(domain []string, r0, r1, padding float64) Band {
	b := Band{
		domain:  make([]string, 0, len(domain)),
		index:   make(map[string]int, len(domain)),
		r0:      r0,
		r1:      r1,
		padding: math.Min(1, math.Max(0, padding)),
	}
	for _, d := range domain {
		if _, ok := b.index[d]; ok {
			continue
		}
		b.index[d] = len(b.domain)
		b.domain = append(b.domain, d)
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	start, stop := b.r0, b.r1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	b.step = (stop - start) / math.Max(1, n-b.padding+b.padding*2)
	start += (stop - start - b.step*(n-b.padding)) * 0.5
	b.start = start
	b.reverse = reverse
}

// Map returns the start of name's band.
func (b Band) Map(name string) (float64, bool) {
	i, ok := b.index[name]
	if !ok {
		return 0, false
	}
	if b.reverse {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Contains reports whether name is in the domain.
func (b Band) Contains(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Domain returns the names in band order.
func (b Band) Domain() []string {
	return append([]string(nil), b.domain...)
}

// Bandwidth is the height of each band.
func (b Band) Bandwidth() float64 { return b.step * (1 - b.padding) }

// Step is the distance between the starts of adjacent bands.
func (b Band) Step() float64 { return b.step }

// Range returns the configured output extent.
func (b Band) Range() (float64, float64) { return b.r0, b.r1 }
