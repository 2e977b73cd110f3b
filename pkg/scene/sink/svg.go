package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/statebars/pkg/scene"
)

const tooltipCSS = `
    .tooltip { pointer-events: none; font: 12px sans-serif; }
    .tooltip rect { fill: #fff; stroke: #999; rx: 4; }
    .bar { cursor: default; }`

const tooltipJS = `
    (function() {
      const svg = document.currentScript ? document.currentScript.closest('svg') : document.querySelector('svg');
      const tip = svg.querySelector('.tooltip');
      if (!tip) return;
      const bg = tip.querySelector('rect');
      const txt = tip.querySelector('text');
      function move(e) {
        const pt = svg.createSVGPoint();
        pt.x = e.clientX; pt.y = e.clientY;
        const p = pt.matrixTransform(svg.getScreenCTM().inverse());
        tip.setAttribute('transform', 'translate(' + (p.x + 12).toFixed(1) + ',' + (p.y + 12).toFixed(1) + ')');
      }
      function show(e, el) {
        while (txt.firstChild) txt.removeChild(txt.firstChild);
        el.dataset.tip.split('\n').forEach((line, i) => {
          const ts = document.createElementNS('http://www.w3.org/2000/svg', 'tspan');
          ts.setAttribute('x', 8);
          ts.setAttribute('dy', i === 0 ? '1.2em' : '1.3em');
          if (i === 0) ts.setAttribute('font-weight', 'bold');
          ts.textContent = line;
          txt.appendChild(ts);
        });
        move(e);
        tip.setAttribute('visibility', 'visible');
        const box = txt.getBBox();
        bg.setAttribute('width', (box.width + 16).toFixed(1));
        bg.setAttribute('height', (box.height + 10).toFixed(1));
      }
      svg.querySelectorAll('[data-tip]').forEach(el => {
        el.addEventListener('mouseenter', e => show(e, el));
        el.addEventListener('mousemove', move);
        el.addEventListener('mouseleave', () => tip.setAttribute('visibility', 'hidden'));
      });
    })();`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	tooltips bool
	class    string
}

// WithTooltips embeds the hover tooltip group, CSS and script.
func WithTooltips() SVGOption { return func(r *svgRenderer) { r.tooltips = true } }

// WithClass sets the class attribute of the root svg element.
func WithClass(c string) SVGOption { return func(r *svgRenderer) { r.class = c } }

// RenderSVG encodes root's children as an SVG document of the given size.
// The root node itself stands for the svg element and is not written.
func RenderSVG(root *scene.Node, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{class: "statebars"}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		escapeXML(r.class), scene.FormatFloat(width), scene.FormatFloat(height), scene.FormatFloat(width), scene.FormatFloat(height))

	if root != nil {
		for _, c := range root.Children {
			writeNode(&buf, c, 1)
		}
	}

	if r.tooltips {
		renderTooltip(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, n *scene.Node, depth int) {
	indent(buf, depth)
	fmt.Fprintf(buf, "<%s", n.Kind)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, escapeXML(a.Value))
	}
	switch {
	case len(n.Children) == 0 && n.Text == "":
		buf.WriteString("/>\n")
	case len(n.Children) == 0:
		fmt.Fprintf(buf, ">%s</%s>\n", escapeXML(n.Text), n.Kind)
	default:
		buf.WriteString(">")
		if n.Text != "" {
			buf.WriteString(escapeXML(n.Text))
		}
		buf.WriteString("\n")
		for _, c := range n.Children {
			writeNode(buf, c, depth+1)
		}
		indent(buf, depth)
		fmt.Fprintf(buf, "</%s>\n", n.Kind)
	}
}

func renderTooltip(buf *bytes.Buffer) {
	buf.WriteString(`  <g class="tooltip" visibility="hidden"><rect x="0" y="0" width="0" height="0"/><text x="8" y="0"/></g>` + "\n")
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", tooltipCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", tooltipJS)
}

func indent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
