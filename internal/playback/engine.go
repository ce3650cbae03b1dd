// Package playback tracks which walkthrough steps have been seen.
//
// An [Engine] owns the revealed-step set for one selected example. It never
// looks at scroll geometry itself; a [Notifier] feeds it step indices as
// they come into view, and the set only grows until the next Watch.
package playback

// Notifier delivers "step came into view" events to a watching engine.
// Implementations must stop firing after Detach.
type Notifier interface {
	Attach(count int, fire func(step int))
	Detach()
}

// Engine accumulates revealed step indices for the currently watched
// example. All methods are called from a single event loop; there is no
// locking by design.
type Engine struct {
	notifier Notifier
	count    int
	revealed map[int]bool
}

func NewEngine() *Engine {
	return &Engine{revealed: make(map[int]bool)}
}

// Watch switches the engine to a new example: the previous notifier is
// detached, the revealed set is cleared, and the new notifier is attached.
// The set is empty before the new notifier can fire.
func (e *Engine) Watch(n Notifier, count int) {
	if e.notifier != nil {
		e.notifier.Detach()
	}
	e.revealed = make(map[int]bool)
	e.count = count
	e.notifier = n
	if n != nil {
		n.Attach(count, e.reveal)
	}
}

// Stop detaches the current notifier without clearing state. Used when the
// owning view is torn down.
func (e *Engine) Stop() {
	if e.notifier != nil {
		e.notifier.Detach()
		e.notifier = nil
	}
}

func (e *Engine) reveal(step int) {
	if step < 0 || step >= e.count {
		return
	}
	e.revealed[step] = true
}

// Revealed reports whether a step has ever been in view since the last
// Watch. Steps never un-reveal.
func (e *Engine) Revealed(step int) bool {
	return e.revealed[step]
}

func (e *Engine) Count() int { return e.count }

func (e *Engine) RevealedCount() int { return len(e.revealed) }
