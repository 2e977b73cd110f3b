// Package stack computes stacked intervals for the sub-category rates.
//
// Layers are produced in key order. For every entry the first layer covers
// [0, v0], the second [v0, v0+v1], and so on, so consecutive layers of one
// entry are contiguous and the last one ends at the entry's stacked total.
// The computation is a pure function of the per-entry values; it knows
// nothing about scales or pixels.
package stack

import "github.com/matzehuels/statebars/pkg/chart/data"

// Segment is one entry's interval within a layer.
type Segment struct {
	Start, End float64
	Entry      *data.Entry
}

// Width returns End - Start.
func (s Segment) Width() float64 { return s.End - s.Start }

// Layer holds a sub-category's segment for every entry, in entry order.
type Layer struct {
	Key      data.Key
	Index    int
	Segments []Segment
}

// Stack lays out keys over entries. Segments reference entries in place, so
// the slice must not be reordered afterwards.
func Stack(entries []data.Entry, keys []data.Key) []Layer {
	layers := make([]Layer, len(keys))
	for i, k := range keys {
		layers[i] = Layer{Key: k, Index: i, Segments: make([]Segment, len(entries))}
	}
	for j := range entries {
		e := &entries[j]
		offset := 0.0
		for i, k := range keys {
			end := offset + e.Value(k)
			layers[i].Segments[j] = Segment{Start: offset, End: end, Entry: e}
			offset = end
		}
	}
	return layers
}
