package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/svg-pan/internal/gesture"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// pointer is one pointer sample for a tick.
type pointer struct {
	id  gesture.PointerID
	pos viewport.Point
}

// inputState holds the polled state of inputs for a single tick, so that
// handling can be driven without a window.
type inputState struct {
	down  []pointer // just pressed
	moved []pointer // held and at a new position
	up    []gesture.PointerID

	quit   bool
	reset  bool
	export bool
}

// pollInput reads ebiten's input state. lastPos remembers where each held
// pointer was on the previous tick so that only real motion is reported.
func (g *Game) pollInput() inputState {
	var in inputState

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	in.quit = justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ)
	in.reset = justPressed(ebiten.KeyR) || justPressed(ebiten.KeyHome)
	in.export = justPressed(ebiten.KeyE)

	// Mouse
	mx, my := ebiten.CursorPosition()
	mouse := pointer{id: gesture.MousePointer, pos: viewport.Point{X: float64(mx), Y: float64(my)}}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.down = append(in.down, mouse)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.up = append(in.up, gesture.MousePointer)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		in.moved = g.appendIfMoved(in.moved, mouse)
	}

	// Touch
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.down = append(in.down, pointer{id: gesture.PointerID(id), pos: viewport.Point{X: float64(x), Y: float64(y)}})
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		in.up = append(in.up, gesture.PointerID(id))
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if inpututil.IsTouchJustReleased(id) || inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		in.moved = g.appendIfMoved(in.moved, pointer{id: gesture.PointerID(id), pos: viewport.Point{X: float64(x), Y: float64(y)}})
	}

	return in
}

func (g *Game) appendIfMoved(moved []pointer, p pointer) []pointer {
	if last, ok := g.lastPos[p.id]; ok && last == p.pos {
		return moved
	}
	return append(moved, p)
}

// handleInput applies one tick of input. Pointer-downs outside the canvas
// are dropped before they reach the tracker.
func (g *Game) handleInput(in inputState) error {
	if in.quit {
		return ebiten.Termination
	}
	if in.reset {
		g.emit(g.view.ResetCenter())
		clear(g.lastPos)
	}
	if in.export {
		g.exportView()
	}

	for _, p := range in.down {
		if !g.layout.contains(p.pos) {
			continue
		}
		g.lastPos[p.id] = p.pos
		g.emit(g.view.PointerDown(p.id, p.pos))
	}
	for _, p := range in.moved {
		g.lastPos[p.id] = p.pos
		g.emit(g.view.PointerMove(p.id, p.pos))
	}
	for _, id := range in.up {
		delete(g.lastPos, id)
		g.emit(g.view.PointerUp(id))
	}
	return nil
}
