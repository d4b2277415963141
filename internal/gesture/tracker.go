// Package gesture turns pointer events into pan deltas.
//
// A Tracker is either Idle or Panning. Pointer-down records the origin in
// local coordinates; every pointer-move while Panning yields origin-current
// without moving the origin; pointer-up returns to Idle.
package gesture

import "github.com/iburimskiy/svg-pan/internal/viewport"

// PointerID identifies the pointer driving a gesture. Front ends use
// MousePointer for the mouse and a touch identifier otherwise.
type PointerID int

// MousePointer is the PointerID used for mouse input.
const MousePointer PointerID = -1

// State is the tracker state.
type State int

const (
	Idle State = iota
	Panning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	default:
		return "unknown"
	}
}

// Tracker holds the pointer-down origin for the active gesture.
// The zero value is Idle.
type Tracker struct {
	state  State
	owner  PointerID
	origin viewport.Point
}

// State reports the current state.
func (t *Tracker) State() State { return t.state }

// Origin returns the gesture origin in local coordinates. ok is false when Idle.
func (t *Tracker) Origin() (origin viewport.Point, ok bool) {
	return t.origin, t.state == Panning
}

// Down starts (or re-anchors) a gesture for id at a screen point.
// It reports false and leaves the tracker untouched when the screen
// transform is unavailable, or when another pointer already owns the
// gesture.
func (t *Tracker) Down(id PointerID, ctm *viewport.Matrix, screen viewport.Point) bool {
	if t.state == Panning && t.owner != id {
		return false
	}
	local, ok := viewport.ToLocal(ctm, screen)
	if !ok {
		return false
	}
	t.state = Panning
	t.owner = id
	t.origin = local
	return true
}

// Move returns the pan delta origin-current for a pointer at a screen point.
// ok is false when Idle, when id does not own the gesture, or when the
// transform is unavailable.
func (t *Tracker) Move(id PointerID, ctm *viewport.Matrix, screen viewport.Point) (pan viewport.Point, ok bool) {
	if t.state != Panning || t.owner != id {
		return viewport.Point{}, false
	}
	current, ok := viewport.ToLocal(ctm, screen)
	if !ok {
		return viewport.Point{}, false
	}
	return t.origin.Sub(current), true
}

// Up ends the gesture owned by id. It reports whether a gesture ended.
func (t *Tracker) Up(id PointerID) bool {
	if t.state != Panning || t.owner != id {
		return false
	}
	t.state = Idle
	t.origin = viewport.Point{}
	return true
}

// Cancel drops any active gesture regardless of owner.
func (t *Tracker) Cancel() bool {
	was := t.state == Panning
	t.state = Idle
	t.origin = viewport.Point{}
	return was
}
