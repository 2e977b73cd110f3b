// Package render draws the per-state stacked bar chart.
//
// A [Renderer] runs one full pass: it clears the surface, derives entries
// from the raw records, builds the scales and the stack layout, and draws
// bars, axes, title, legend and the optional highlight overlay, in that
// order. Every bar gets pointer handlers that fill the shared tooltip and
// delegate positioning to a [tooltip.Control].
//
// There is no incremental update path. A [Chart] watches the three inputs a
// pass depends on (the dataset pointer, the surface size and the brushed
// state) and runs a new full pass whenever one of them changes:
//
//	p := canvas.NewFixed(960, 640)
//	c := render.NewChart(render.New(render.DefaultOptions(), nil, logger), p)
//	c.SetData(dataset)    // idle -> drawing
//	c.SetBrushed("Texas") // redraw with overlay
//	p.Resize(1200, 800)   // redraw at the new size
//
// Passes are synchronous and never return errors. A missing surface or
// dataset skips the pass; records with unusable populations are drawn as
// zero-width bars and logged.
package render
