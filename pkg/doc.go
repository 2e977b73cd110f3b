// Package pkg provides the core libraries for statebars, a horizontal stacked
// bar chart of firearm deaths per 100k residents by US state.
//
// # Overview
//
// Every state contributes one band split into a male and a female segment.
// Bands are sorted by their combined rate, each segment carries a tooltip,
// and one state may be brushed from a linked view to draw a highlight
// outline across its band.
//
// # Architecture
//
// The data flow through statebars:
//
//	states.json (file or URL)
//	         ↓
//	    [io] / [source] (decode records)
//	         ↓
//	    [chart/data] (weights, per-100k rates, sort)
//	         ↓
//	    [chart/scale] + [chart/stack] (band/linear scales, segments)
//	         ↓
//	    [chart/render] (scene tree on a [canvas] surface)
//	         ↓
//	    [scene/sink] (SVG or scene JSON)
//
// # Quick Start
//
//	ds, _ := dataio.ImportJSON("states.json")
//
//	r := render.New(render.DefaultOptions(), nil, nil)
//	chart := render.NewChart(r, canvas.NewFixed(960, 640))
//	chart.SetBrushed("Texas")
//	chart.SetData(ds)
//
//	s := chart.Surface()
//	svg := sink.RenderSVG(s.Root, s.Width, s.Height, sink.WithTooltips())
//
// [pipeline] wraps those steps with validation, timing and multi-format
// encoding for the CLI and the HTTP server.
//
// # Main Packages
//
// [chart/data] - Records, derived entries, and the mortality weight table.
//
// [chart/scale] - Band and linear scales with d3-compatible ticks.
//
// [chart/stack] - Stacks male/female values into contiguous segments.
//
// [chart/render] - Draws bars, axes, title, legend and the highlight. [render.Chart]
// redraws whenever data, the brushed state, or the surface changes.
//
// [scene] - Retained node tree with pointer event dispatch.
//
// [tooltip] - Shared tooltip handle and the pointer-follow control.
//
// [config] - TOML configuration for chart options and weight overrides.
//
// [observability] - Render and HTTP hooks consumed by the server's metrics.
//
// [chart/data]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/chart/data
// [chart/scale]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/chart/scale
// [chart/stack]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/chart/stack
// [chart/render]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/chart/render
// [render.Chart]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/chart/render#Chart
// [canvas]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/canvas
// [scene]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/scene
// [scene/sink]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/scene/sink
// [tooltip]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/tooltip
// [io]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/io
// [source]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/source
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/statebars/pkg/observability
package pkg
