// Package input turns per-frame pointer readings into drag gesture calls.
package input

// Sample is one frame's reading of the primary pointer: the left mouse button
// or the first active touch.
type Sample struct {
	Pressed bool
	X, Y    float64
	Touch   bool
}

// DragHandler receives gesture transitions.
type DragHandler interface {
	DragStart(y float64)
	DragMove(y float64)
	DragEnd()
}

// Tracker detects press, move and release edges between consecutive samples.
type Tracker struct {
	down  bool
	touch bool
	lastY float64
}

// Update compares s with the previous sample and forwards any transition to h.
// A move is reported only when the vertical position changed.
func (t *Tracker) Update(s Sample, h DragHandler) {
	switch {
	case s.Pressed && !t.down:
		t.down = true
		t.touch = s.Touch
		t.lastY = s.Y
		h.DragStart(s.Y)
	case s.Pressed && t.down:
		if s.Y == t.lastY {
			return
		}
		t.lastY = s.Y
		h.DragMove(s.Y)
	case !s.Pressed && t.down:
		t.down = false
		h.DragEnd()
	}
}

// Down reports whether the pointer is held.
func (t *Tracker) Down() bool { return t.down }

// Touch reports whether the current or last gesture came from a touch.
func (t *Tracker) Touch() bool { return t.touch }

// Reset forgets the held pointer without emitting DragEnd.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
