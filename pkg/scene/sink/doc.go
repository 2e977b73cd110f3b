// Package sink encodes a scene tree into output formats.
//
// [RenderSVG] writes a standalone SVG document. With [WithTooltips], every
// element carrying a data-tip attribute gets a hover tooltip driven by a
// small embedded script, so a file opened straight in a browser behaves like
// the dashboard panel. [RenderJSON] dumps the tree (including which pointer
// events each node handles) for other front ends and for debugging.
//
// Both encoders are deterministic: the same tree always yields the same
// bytes.
package sink
