package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/statebars/pkg/chart/data"
)

type entry struct {
	Abbrev        string  `json:"abbrev"`
	Name          string  `json:"name"`
	Total         int     `json:"total"`
	Male          float64 `json:"male"`
	Female        float64 `json:"female"`
	Per100k       float64 `json:"per100k"`
	Population    float64 `json:"population"`
	EaseOfDrawing float64 `json:"ease_of_drawing"`
	GenderRatio   float64 `json:"gender_ratio"`
	Invalid       bool    `json:"invalid,omitempty"`
}

// WriteEntriesJSON encodes entries as an indented JSON array, in order.
// Invalid entries are written with population 0.
func WriteEntriesJSON(w io.Writer, entries []data.Entry) error {
	out := make([]entry, len(entries))
	for i, e := range entries {
		pop := e.Population
		if e.Invalid {
			pop = 0
		}
		out[i] = entry{
			Abbrev:        e.Abbrev,
			Name:          e.Name,
			Total:         e.Total,
			Male:          e.Male,
			Female:        e.Female,
			Per100k:       e.Per100k,
			Population:    pop,
			EaseOfDrawing: e.EaseOfDrawing,
			GenderRatio:   e.GenderRatio,
			Invalid:       e.Invalid,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteJSON encodes ds in the input format, so exports can be re-imported
// with [ReadJSON].
func WriteJSON(w io.Writer, ds *data.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
