// Package scale maps plot values to pixel coordinates.
//
// [Linear] is the continuous value scale along the horizontal axis and
// [Band] the categorical scale assigning each state a vertical band. Both
// follow d3's scaleLinear and scaleBand arithmetic so a chart rendered here
// lines up with the dashboard's other views.
package scale

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Linear maps Domain onto Range by linear interpolation.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear returns a scale mapping [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map returns the range position of v. A zero-span domain maps every value
// to the start of the range.
func (s Linear) Map(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	if span == 0 || math.IsNaN(span) {
		return s.Range[0]
	}
	t := (v - s.Domain[0]) / span
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec mirrors d3-array's tickSpec: i1..i2 are tick indices and inc is
// the step (negative inc means 1/-inc, used for sub-unit steps to avoid
// accumulating float error).
func tickSpec(start, stop float64, count int) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= float64(count) && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns roughly count evenly spaced, human-friendly values within
// the domain (steps of 1, 2 or 5 times a power of ten).
func (s Linear) Ticks(count int) []float64 {
	start, stop := math.Min(s.Domain[0], s.Domain[1]), math.Max(s.Domain[0], s.Domain[1])
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(stop-start, 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	i1, i2, inc := tickSpec(start, stop, count)
	if i2 < i1 {
		return nil
	}
	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	return ticks
}

// TickStep returns the spacing between the values [Linear.Ticks] produces.
func (s Linear) TickStep(count int) float64 {
	start, stop := math.Min(s.Domain[0], s.Domain[1]), math.Max(s.Domain[0], s.Domain[1])
	if count <= 0 || start == stop {
		return 0
	}
	_, _, inc := tickSpec(start, stop, count)
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

var tickPrinter = message.NewPrinter(language.English)

// TickFormat returns a formatter with just enough decimals to tell adjacent
// ticks apart, grouping thousands with commas.
func (s Linear) TickFormat(count int) func(float64) string {
	precision := 0
	if step := s.TickStep(count); step > 0 {
		precision = max(0, -int(math.Floor(math.Log10(step))))
	}
	return func(v float64) string {
		return tickPrinter.Sprintf("%.*f", precision, v)
	}
}
