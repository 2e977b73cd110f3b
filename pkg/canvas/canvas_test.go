package canvas

import "testing"

func TestFixed(t *testing.T) {
	p := NewFixed(800, 600)
	s, ok := p.Surface()
	if !ok {
		t.Fatal("Surface() should be ready")
	}
	if s.Width != 800 || s.Height != 600 || s.Root == nil || s.Tip == nil {
		t.Errorf("surface = %+v", s)
	}
}

func TestFixedResizeNotifies(t *testing.T) {
	p := NewFixed(800, 600)
	first, _ := p.Surface()

	var calls []*Surface
	p.OnChange(func(s *Surface) { calls = append(calls, s) })

	p.Resize(800, 600)
	if len(calls) != 0 {
		t.Fatalf("same-size resize notified %d times", len(calls))
	}

	p.Resize(1024, 768)
	if len(calls) != 1 {
		t.Fatalf("resize notified %d times, want 1", len(calls))
	}
	if calls[0].Width != 1024 || calls[0].Height != 768 {
		t.Errorf("notified size = %vx%v", calls[0].Width, calls[0].Height)
	}
	if calls[0].Root != first.Root || calls[0].Tip != first.Tip {
		t.Error("root and tooltip handle should survive a resize")
	}
}

func TestPending(t *testing.T) {
	p := NewPending()
	if _, ok := p.Surface(); ok {
		t.Fatal("pending provider should not have a surface")
	}

	var got *Surface
	p.OnChange(func(s *Surface) { got = s })
	p.Resize(300, 200)

	if got == nil || got.Width != 300 {
		t.Fatalf("first Resize should publish the surface, got %+v", got)
	}
	if _, ok := p.Surface(); !ok {
		t.Error("surface should be ready after Resize")
	}
}

func TestResizeNotifiesSnapshot(t *testing.T) {
	p := NewFixed(800, 600)

	var outer, inner int
	p.OnChange(func(*Surface) {
		outer++
		p.OnChange(func(*Surface) { inner++ })
	})

	p.Resize(1024, 768)
	if outer != 1 || inner != 0 {
		t.Fatalf("first resize: outer %d inner %d, want 1 0", outer, inner)
	}
	p.Resize(640, 480)
	if outer != 2 || inner != 1 {
		t.Errorf("second resize: outer %d inner %d, want 2 1", outer, inner)
	}
}
