package pipeline

import (
	"bytes"
	"fmt"

	dataio "github.com/matzehuels/statebars/pkg/io"
	"github.com/matzehuels/statebars/pkg/scene/sink"
)

// Encode serializes a rendered result in one format.
func Encode(format string, res *Result, opts Options) ([]byte, error) {
	s := res.Surface
	switch format {
	case FormatSVG:
		var svgOpts []sink.SVGOption
		if !opts.NoTooltips {
			svgOpts = append(svgOpts, sink.WithTooltips())
		}
		return sink.RenderSVG(s.Root, s.Width, s.Height, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(s.Root, s.Width, s.Height)
	case FormatEntries:
		var buf bytes.Buffer
		if err := dataio.WriteEntriesJSON(&buf, res.Entries); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDataset:
		var buf bytes.Buffer
		if err := dataio.WriteJSON(&buf, res.Dataset); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
