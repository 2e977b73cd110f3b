package data

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Key names one stacked sub-category.
type Key string

const (
	KeyMale   Key = "male"
	KeyFemale Key = "female"
)

// Keys is the stacking order. Male is drawn closest to the axis origin and
// listed first in the legend.
var Keys = []Key{KeyMale, KeyFemale}

// per100k is the population denominator used for every rate.
const per100k = 100000

// Entry is one plotted state.
type Entry struct {
	Abbrev        string
	Name          string
	Total         int
	Male          float64 // male deaths per 100k
	Female        float64 // female deaths per 100k
	Per100k       float64 // all deaths per 100k
	Population    float64
	EaseOfDrawing float64
	GenderRatio   float64 // male_count / count
	Invalid       bool    // population unusable; rates forced to 0
}

// Value returns the rate stacked for key.
func (e *Entry) Value(key Key) float64 {
	switch key {
	case KeyMale:
		return e.Male
	case KeyFemale:
		return e.Female
	}
	return 0
}

// Share returns key's percentage of the total rate, or 0 when the total is 0.
func (e *Entry) Share(key Key) float64 {
	if e.Per100k > 0 {
		return e.Value(key) / e.Per100k * 100
	}
	return 0
}

// NormalizeName replaces underscore separators with spaces. It is applied to
// record names and to brushed selections so both match the band domain.
func NormalizeName(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Transform derives one entry per record. Input order is kept; callers sort
// with [SortByRate] before building scales.
func Transform(records []Record, w Weights) []Entry {
	out := make([]Entry, 0, len(records))
	for _, r := range records {
		out = append(out, transformOne(r, w))
	}
	return out
}

func transformOne(r Record, w Weights) Entry {
	pop := float64(r.Population)
	e := Entry{
		Abbrev:        r.Abbrev,
		Name:          NormalizeName(r.State),
		Total:         r.Count,
		Population:    pop,
		EaseOfDrawing: w.Lookup(r.Abbrev),
	}
	if r.Count != 0 {
		e.GenderRatio = float64(r.MaleCount) / float64(r.Count)
	}
	if pop <= 0 || math.IsNaN(pop) || math.IsInf(pop, 0) {
		e.Invalid = true
		return e
	}
	e.Male = Round2(float64(r.MaleCount) / pop * per100k)
	e.Female = Round2(float64(r.Count-r.MaleCount) / pop * per100k)
	e.Per100k = Round2(float64(r.Count) / pop * per100k)
	return e
}

// SortByRate orders entries by Per100k descending. The sort is stable, so
// ties keep their input order.
func SortByRate(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Per100k, a.Per100k)
	})
}

// Names returns entry names in slice order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}

// Prepare runs [Transform] and [SortByRate].
func Prepare(records []Record, w Weights) []Entry {
	entries := Transform(records, w)
	SortByRate(entries)
	return entries
}
