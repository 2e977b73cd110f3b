package render

import (
	"sync"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/chart/data"
)

// State is the lifecycle state of a [Chart].
type State int

const (
	// StateIdle means the last pass was skipped for lack of a surface or data.
	StateIdle State = iota
	// StateDrawing means the surface holds a complete pass.
	StateDrawing
)

func (s State) String() string {
	if s == StateDrawing {
		return "drawing"
	}
	return "idle"
}

// Chart reruns a full pass whenever the dataset, the surface or the brushed
// state changes. Setting a dependency to its current value does nothing.
// A skipped pass leaves the previous scene on the surface but returns the
// chart to [StateIdle].
// Passes run synchronously under the chart's lock, so they never overlap.
type Chart struct {
	mu       sync.Mutex
	renderer *Renderer
	surface  *canvas.Surface
	data     *data.Dataset
	brushed  string
	state    State
	passes   int
}

// NewChart wires r to the provider's surface changes.
func NewChart(r *Renderer, p canvas.Provider) *Chart {
	c := &Chart{renderer: r}
	if s, ok := p.Surface(); ok {
		c.surface = s
	}
	p.OnChange(c.resize)
	return c
}

// SetData replaces the dataset. Datasets compare by identity.
func (c *Chart) SetData(d *data.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d == c.data {
		return
	}
	c.data = d
	c.redraw()
}

// SetBrushed replaces the state selected in a sibling view.
func (c *Chart) SetBrushed(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name == c.brushed {
		return
	}
	c.brushed = name
	c.redraw()
}

// Update replaces the dataset and the brushed state together, running at
// most one pass.
func (c *Chart) Update(d *data.Dataset, brushed string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d == c.data && brushed == c.brushed {
		return
	}
	c.data, c.brushed = d, brushed
	c.redraw()
}

func (c *Chart) resize(s *canvas.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface != nil && s != nil && *c.surface == *s {
		return
	}
	c.surface = s
	c.redraw()
}

func (c *Chart) redraw() {
	if !c.renderer.Draw(c.surface, Input{Data: c.data, Brushed: c.brushed}) {
		c.state = StateIdle
		return
	}
	c.state = StateDrawing
	c.passes++
}

// State returns the lifecycle state.
func (c *Chart) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Passes returns the number of completed passes.
func (c *Chart) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

// Surface returns the surface of the last pass, if any.
func (c *Chart) Surface() *canvas.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}

// Brushed returns the current brushed state.
func (c *Chart) Brushed() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.brushed
}
