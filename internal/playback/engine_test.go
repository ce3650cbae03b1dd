package playback

import (
	"math"
	"testing"
)

// fakeNotifier synthesizes intersection events without a rendering surface.
type fakeNotifier struct {
	fire     func(int)
	attached int
	detached int
}

func (f *fakeNotifier) Attach(count int, fire func(step int)) {
	f.fire = fire
	f.attached++
}

func (f *fakeNotifier) Detach() {
	f.fire = nil
	f.detached++
}

func (f *fakeNotifier) emit(steps ...int) {
	for _, s := range steps {
		if f.fire != nil {
			f.fire(s)
		}
	}
}

func TestEngineReveal(t *testing.T) {
	e := NewEngine()
	n := &fakeNotifier{}
	e.Watch(n, 5)

	if e.RevealedCount() != 0 {
		t.Fatal("revealed set should start empty")
	}

	n.emit(0, 2)
	if !e.Revealed(0) || !e.Revealed(2) {
		t.Error("steps 0 and 2 should be revealed")
	}
	if e.Revealed(1) {
		t.Error("step 1 should not be revealed")
	}
}

func TestEngineMonotonic(t *testing.T) {
	e := NewEngine()
	n := &fakeNotifier{}
	e.Watch(n, 3)

	n.emit(1)
	before := e.RevealedCount()

	// Re-delivery and scrolling away never shrink the set.
	n.emit(1)
	n.emit(1)
	if e.RevealedCount() != before {
		t.Errorf("duplicate events changed the set: %d -> %d", before, e.RevealedCount())
	}
	if !e.Revealed(1) {
		t.Error("step 1 should stay revealed")
	}
}

func TestEngineIgnoresOutOfRange(t *testing.T) {
	e := NewEngine()
	n := &fakeNotifier{}
	e.Watch(n, 2)

	n.emit(-1, 2, 99)
	if e.RevealedCount() != 0 {
		t.Errorf("out-of-range events should be ignored, got %d revealed", e.RevealedCount())
	}
}

func TestEngineResetLaw(t *testing.T) {
	e := NewEngine()
	first := &fakeNotifier{}
	e.Watch(first, 4)
	first.emit(0, 1, 2)

	second := &fakeNotifier{}
	e.Watch(second, 4)

	if first.detached != 1 {
		t.Error("previous notifier should be detached on example change")
	}
	if e.RevealedCount() != 0 {
		t.Error("revealed set should be empty before any new event fires")
	}

	// A stale fire from the old notifier must be inert.
	first.emit(3)
	if e.Revealed(3) {
		t.Error("detached notifier should not reveal steps")
	}

	second.emit(3)
	if !e.Revealed(3) {
		t.Error("new notifier should reveal steps")
	}
}

func TestEngineWatchIdempotent(t *testing.T) {
	for i := 0; i < 2; i++ {
		e := NewEngine()
		n := &fakeNotifier{}
		e.Watch(n, 3)
		if e.Count() != 3 || e.RevealedCount() != 0 {
			t.Fatalf("watch should yield count=3 and empty set, got %d/%d", e.Count(), e.RevealedCount())
		}
	}
}

func TestEngineStop(t *testing.T) {
	e := NewEngine()
	n := &fakeNotifier{}
	e.Watch(n, 2)
	n.emit(0)

	e.Stop()
	if n.detached != 1 {
		t.Error("stop should detach the notifier")
	}
	if !e.Revealed(0) {
		t.Error("stop should not clear revealed state")
	}
}

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		name                string
		top, height         int
		viewTop, viewHeight int
		want                float64
	}{
		{"fully inside", 5, 4, 0, 20, 1.0},
		{"fully above", 0, 4, 10, 20, 0.0},
		{"fully below", 40, 4, 10, 20, 0.0},
		{"half clipped at top", 8, 4, 10, 20, 0.5},
		{"half clipped at bottom", 28, 4, 10, 20, 0.5},
		{"quarter visible", 29, 4, 10, 20, 0.25},
		{"zero height step", 5, 0, 0, 20, 0.0},
		{"zero height viewport", 5, 4, 0, 0, 0.0},
		{"touching edge only", 30, 4, 10, 20, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleFraction(tt.top, tt.height, tt.viewTop, tt.viewHeight)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VisibleFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewportThreshold(t *testing.T) {
	var fired []int
	v := NewViewport(0.30)
	v.Attach(3, func(step int) { fired = append(fired, step) })
	v.SetBounds([]Bounds{
		{Top: 0, Height: 10},
		{Top: 10, Height: 10},
		{Top: 20, Height: 10},
	})

	// Window covers step 0 fully, 3 lines (30%) of step 1, none of step 2.
	fired = nil
	v.SetViewport(0, 13)

	seen := map[int]bool{}
	for _, s := range fired {
		seen[s] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("steps 0 and 1 should fire at 30%% visibility, fired %v", fired)
	}
	if seen[2] {
		t.Error("step 2 is out of view and should not fire")
	}

	// 2 lines is under the threshold.
	fired = nil
	v.SetViewport(0, 12)
	for _, s := range fired {
		if s == 1 {
			t.Error("step 1 under threshold should not fire")
		}
	}
}

func TestViewportDetachStopsFiring(t *testing.T) {
	var fired int
	v := NewViewport(0.30)
	v.Attach(1, func(int) { fired++ })
	v.SetBounds([]Bounds{{Top: 0, Height: 5}})
	v.SetViewport(0, 10)
	if fired == 0 {
		t.Fatal("expected at least one fire while attached")
	}

	v.Detach()
	before := fired
	v.SetViewport(0, 10)
	if fired != before {
		t.Error("detached viewport must not fire")
	}
}

func TestViewportBadThresholdFallsBack(t *testing.T) {
	if v := NewViewport(0); v.threshold != RevealThreshold {
		t.Errorf("expected fallback threshold %v, got %v", RevealThreshold, v.threshold)
	}
	if v := NewViewport(1.5); v.threshold != RevealThreshold {
		t.Errorf("expected fallback threshold %v, got %v", RevealThreshold, v.threshold)
	}
}
