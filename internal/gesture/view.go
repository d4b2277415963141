package gesture

import "github.com/iburimskiy/svg-pan/internal/viewport"

// Event is what a pointer event did to a View.
type Event int

const (
	None    Event = iota
	Started       // a gesture began
	Panned        // the center moved
	Ended         // a gesture finished
	Reset         // the center went back home
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Started:
		return "started"
	case Panned:
		return "panned"
	case Ended:
		return "ended"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Layout returns the screen CTM for the canvas showing vb, or nil when
// the canvas has no usable transform yet.
type Layout func(vb viewport.ViewBox) *viewport.Matrix

// View owns the two pieces of UI state: the gesture tracker and the
// viewport center. Pointer coordinates are in screen pixels.
type View struct {
	Tracker Tracker
	Center  viewport.Center
	Layout  Layout
}

// NewView returns a View centered on viewport.Home.
func NewView(layout Layout) *View {
	return &View{Center: viewport.Home, Layout: layout}
}

// ViewBox is the current visible region.
func (v *View) ViewBox() viewport.ViewBox { return v.Center.ViewBox() }

func (v *View) ctm() *viewport.Matrix {
	if v.Layout == nil {
		return nil
	}
	return v.Layout(v.ViewBox())
}

// PointerDown begins a gesture. Hit-testing against the canvas is the
// caller's job.
func (v *View) PointerDown(id PointerID, screen viewport.Point) Event {
	if v.Tracker.Down(id, v.ctm(), screen) {
		return Started
	}
	return None
}

// PointerMove pans the center while a gesture is active.
func (v *View) PointerMove(id PointerID, screen viewport.Point) Event {
	pan, ok := v.Tracker.Move(id, v.ctm(), screen)
	if !ok {
		return None
	}
	v.Center = v.Center.Reduce(pan)
	return Panned
}

// PointerUp ends the gesture owned by id.
func (v *View) PointerUp(id PointerID) Event {
	if v.Tracker.Up(id) {
		return Ended
	}
	return None
}

// ResetCenter cancels any gesture and recenters on viewport.Home.
func (v *View) ResetCenter() Event {
	v.Tracker.Cancel()
	v.Center = viewport.Home
	return Reset
}
