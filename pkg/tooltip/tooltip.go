// Package tooltip provides the shared hover tooltip and the control that
// positions it.
//
// A [Tip] is the single tooltip handle a surface carries across render
// passes. The chart core only fills in its lines; moving and hiding it is
// delegated to a [Control], the contract the dashboard's tooltip service
// implements. [Follow] is the default control.
package tooltip

import (
	"html"
	"strings"
	"sync"

	"github.com/matzehuels/statebars/pkg/scene"
)

// Tip is the tooltip handle. It is safe for concurrent use.
type Tip struct {
	mu      sync.Mutex
	lines   []string
	x, y    float64
	visible bool
}

// New returns a hidden, empty tip.
func New() *Tip { return &Tip{} }

// SetLines replaces the content.
func (t *Tip) SetLines(lines []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append([]string(nil), lines...)
}

// Lines returns a copy of the content.
func (t *Tip) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}

// HTML returns the content as markup: the first line bold, lines separated
// by <br/>, every line escaped.
func (t *Tip) HTML() string {
	lines := t.Lines()
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = html.EscapeString(l)
		if i == 0 {
			parts[i] = "<b>" + parts[i] + "</b>"
		}
	}
	return strings.Join(parts, "<br/>")
}

// MoveTo places the tip and makes it visible.
func (t *Tip) MoveTo(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.x, t.y, t.visible = x, y, true
}

// Hide makes the tip invisible. Content is kept.
func (t *Tip) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = false
}

// Position returns where the tip is drawn.
func (t *Tip) Position() (x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.x, t.y
}

// Visible reports whether the tip is shown.
func (t *Tip) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Control is the tooltip service the chart talks to.
type Control interface {
	// MoveTTipEvent positions t at the pointer and shows it.
	MoveTTipEvent(t *Tip, e scene.PointerEvent)
	// HideTTip hides t.
	HideTTip(t *Tip)
}

// Follow keeps the tip next to the pointer, offset so it does not sit under
// the cursor.
type Follow struct {
	OffsetX, OffsetY float64
}

// DefaultFollow offsets the tip 12px right and below the pointer.
var DefaultFollow = Follow{OffsetX: 12, OffsetY: 12}

// MoveTTipEvent implements Control.
func (f Follow) MoveTTipEvent(t *Tip, e scene.PointerEvent) {
	if t == nil {
		return
	}
	t.MoveTo(e.X+f.OffsetX, e.Y+f.OffsetY)
}

// HideTTip implements Control.
func (f Follow) HideTTip(t *Tip) {
	if t == nil {
		return
	}
	t.Hide()
}

var _ Control = Follow{}
