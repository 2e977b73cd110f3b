// Package canvas provides drawing surfaces to the chart.
//
// A [Provider] yields the current [Surface] (a scene root, its pixel size and
// the shared tooltip handle) and notifies subscribers whenever the surface
// changes. Coalescing of rapid resizes is the provider's job; consumers
// redraw on every notification they receive.
package canvas

import (
	"slices"
	"sync"

	"github.com/matzehuels/statebars/pkg/scene"
	"github.com/matzehuels/statebars/pkg/tooltip"
)

// Surface is a drawable area.
type Surface struct {
	Root   *scene.Node
	Width  float64
	Height float64
	Tip    *tooltip.Tip
}

// Provider supplies surfaces.
type Provider interface {
	// Surface returns the current surface, or false while none is ready.
	Surface() (*Surface, bool)
	// OnChange registers fn to be called with the new surface after every
	// size change.
	OnChange(fn func(*Surface))
}

// Fixed is a Provider whose size is set explicitly. The scene root and
// tooltip handle are created once and reused across resizes.
type Fixed struct {
	mu        sync.Mutex
	surface   *Surface
	listeners []func(*Surface)
}

// NewFixed returns a ready provider of the given size.
func NewFixed(width, height float64) *Fixed {
	return &Fixed{surface: &Surface{
		Root:   scene.New(scene.KindGroup),
		Width:  width,
		Height: height,
		Tip:    tooltip.New(),
	}}
}

// NewPending returns a provider with no surface yet; the first [Fixed.Resize]
// makes it available.
func NewPending() *Fixed { return &Fixed{} }

// Surface implements Provider.
func (f *Fixed) Surface() (*Surface, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.surface == nil {
		return nil, false
	}
	s := *f.surface
	return &s, true
}

// OnChange implements Provider.
func (f *Fixed) OnChange(fn func(*Surface)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Resize changes the surface size and notifies listeners. Resizing to the
// current size is a no-op.
func (f *Fixed) Resize(width, height float64) {
	f.mu.Lock()
	if f.surface != nil && f.surface.Width == width && f.surface.Height == height {
		f.mu.Unlock()
		return
	}
	if f.surface == nil {
		f.surface = &Surface{Root: scene.New(scene.KindGroup), Tip: tooltip.New()}
	}
	f.surface.Width, f.surface.Height = width, height
	s := *f.surface
	listeners := slices.Clone(f.listeners)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(&s)
	}
}

var _ Provider = (*Fixed)(nil)
