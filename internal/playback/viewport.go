package playback

// RevealThreshold is the default fraction of a step that must be visible
// before it counts as seen.
const RevealThreshold = 0.30

// Bounds is a step's extent in rendered lines.
type Bounds struct {
	Top    int
	Height int
}

// Viewport is the terminal Notifier implementation. The owning view tells it
// where each step sits in the rendered output and where the scroll window
// is; it fires for every step whose visible fraction meets the threshold.
type Viewport struct {
	threshold float64
	bounds    []Bounds

	top    int
	height int

	count int
	fire  func(step int)
}

func NewViewport(threshold float64) *Viewport {
	if threshold <= 0 || threshold > 1 {
		threshold = RevealThreshold
	}
	return &Viewport{threshold: threshold}
}

func (v *Viewport) Attach(count int, fire func(step int)) {
	v.count = count
	v.fire = fire
	v.recompute()
}

func (v *Viewport) Detach() {
	v.fire = nil
	v.count = 0
	v.bounds = nil
}

// SetBounds records each step's line extent in render order.
func (v *Viewport) SetBounds(bounds []Bounds) {
	v.bounds = bounds
	v.recompute()
}

// SetViewport moves the scroll window and fires for newly visible steps.
func (v *Viewport) SetViewport(top, height int) {
	v.top = top
	v.height = height
	v.recompute()
}

func (v *Viewport) recompute() {
	if v.fire == nil || v.height <= 0 {
		return
	}
	for i, b := range v.bounds {
		if i >= v.count {
			break
		}
		if VisibleFraction(b.Top, b.Height, v.top, v.height) >= v.threshold {
			v.fire(i)
		}
	}
}

// VisibleFraction returns what fraction of an extent [top, top+height) lies
// inside the window [viewTop, viewTop+viewHeight).
func VisibleFraction(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := top
	if viewTop > lo {
		lo = viewTop
	}
	hi := top + height
	if viewTop+viewHeight < hi {
		hi = viewTop + viewHeight
	}
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}
