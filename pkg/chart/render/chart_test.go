package render

import (
	"testing"

	"github.com/matzehuels/statebars/pkg/canvas"
	"github.com/matzehuels/statebars/pkg/observability"
)

func TestChartLifecycle(t *testing.T) {
	p := canvas.NewPending()
	c := NewChart(New(DefaultOptions(), nil, nil), p)

	ds := exampleDataset()
	c.SetData(ds)
	if c.State() != StateIdle || c.Passes() != 0 {
		t.Fatalf("drew without a surface: %s %d", c.State(), c.Passes())
	}

	p.Resize(960, 640)
	if c.State() != StateDrawing || c.Passes() != 1 {
		t.Fatalf("state %s passes %d, want drawing 1", c.State(), c.Passes())
	}

	c.SetData(ds)
	c.SetBrushed("")
	p.Resize(960, 640)
	if c.Passes() != 1 {
		t.Errorf("unchanged dependencies redrew: passes = %d", c.Passes())
	}

	c.SetBrushed("Texas")
	if c.Passes() != 2 {
		t.Errorf("brush change passes = %d, want 2", c.Passes())
	}
	if got := len(c.Surface().Root.FindAll("highlight")); got != 1 {
		t.Errorf("highlights = %d, want 1", got)
	}

	p.Resize(1200, 800)
	if c.Passes() != 3 || c.Surface().Width != 1200 {
		t.Errorf("resize passes = %d width = %v", c.Passes(), c.Surface().Width)
	}

	c.SetData(exampleDataset())
	if c.Passes() != 4 {
		t.Errorf("new dataset identity did not redraw: passes = %d", c.Passes())
	}

	c.SetBrushed("")
	if got := len(c.Surface().Root.FindAll("highlight")); got != 0 {
		t.Errorf("highlights after unbrush = %d, want 0", got)
	}
}

func TestChartIdleWithoutData(t *testing.T) {
	p := canvas.NewFixed(960, 640)
	c := NewChart(New(DefaultOptions(), nil, nil), p)
	c.SetBrushed("Texas")
	p.Resize(800, 600)
	if c.State() != StateIdle || c.Passes() != 0 {
		t.Errorf("state %s passes %d, want idle 0", c.State(), c.Passes())
	}
	if c.Brushed() != "Texas" {
		t.Errorf("brushed = %q", c.Brushed())
	}
}

func TestChartIdleAfterDataRemoved(t *testing.T) {
	c := NewChart(New(DefaultOptions(), nil, nil), canvas.NewFixed(960, 640))
	c.SetData(exampleDataset())
	if c.State() != StateDrawing {
		t.Fatalf("state = %s, want drawing", c.State())
	}

	c.SetData(nil)
	if c.State() != StateIdle {
		t.Errorf("state after removing data = %s, want idle", c.State())
	}
	if c.Passes() != 1 {
		t.Errorf("passes = %d, want 1", c.Passes())
	}
	if c.Surface() == nil || len(c.Surface().Root.FindAll("bar")) == 0 {
		t.Error("previous scene should stay on the surface")
	}
}

func TestChartUpdateDrawsOnce(t *testing.T) {
	h := &recordingHooks{}
	observability.SetRenderHooks(h)
	defer observability.Reset()

	c := NewChart(New(DefaultOptions(), nil, nil), canvas.NewFixed(960, 640))
	c.Update(exampleDataset(), "Texas")

	if c.Passes() != 1 || h.started != 1 || len(h.skipped) != 0 {
		t.Errorf("passes %d started %d skipped %v, want 1 1 []", c.Passes(), h.started, h.skipped)
	}
	if got := len(c.Surface().Root.FindAll("highlight")); got != 1 {
		t.Errorf("highlights = %d, want 1", got)
	}

	ds := exampleDataset()
	c.Update(ds, "Texas")
	c.Update(ds, "Texas")
	if c.Passes() != 2 {
		t.Errorf("repeated update passes = %d, want 2", c.Passes())
	}
}
