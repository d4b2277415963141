// Package term is a terminal front end for the pan viewer. Mouse drags on
// the framed canvas pan it exactly as pointer drags do in the window.
package term

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/export"
	"github.com/iburimskiy/svg-pan/internal/gesture"
	"github.com/iburimskiy/svg-pan/internal/svgdoc"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

type App struct {
	screen tcell.Screen
	cfg    *config.Config
	log    *slog.Logger
	view   *gesture.View
	layout cellLayout

	// mouse edge detection
	held    bool
	lastX   int
	lastY   int
	lastErr error
	saved   string

	export func(svgdoc.Document) (string, error)
}

// New wraps an initialized screen.
func New(screen tcell.Screen, cfg *config.Config, log *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		screen: screen,
		cfg:    cfg,
		log:    log,
		export: export.Save,
	}
	a.view = gesture.NewView(func(vb viewport.ViewBox) *viewport.Matrix {
		return a.layout.ctm(vb)
	})
	screen.EnableMouse(tcell.MouseDragEvents)
	a.resize()
	return a
}

// Center is the current viewport center.
func (a *App) Center() viewport.Center { return a.view.Center }

// Run draws and handles events until the user quits.
func (a *App) Run() {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.draw()
	for ev := range events {
		if !a.handleEvent(ev) {
			return
		}
		a.draw()
	}
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.layout = newCellLayout(w, h)
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyHome:
			a.emit(a.view.ResetCenter())
			a.held = false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.emit(a.view.ResetCenter())
				a.held = false
			case 'e', 'E':
				a.exportView()
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	p := cellCenter(x, y)

	switch {
	case pressed && !a.held:
		a.held = true
		if a.layout.contains(x, y) {
			a.emit(a.view.PointerDown(gesture.MousePointer, p))
		}
	case pressed && (x != a.lastX || y != a.lastY):
		a.emit(a.view.PointerMove(gesture.MousePointer, p))
	case !pressed && a.held:
		a.held = false
		a.emit(a.view.PointerUp(gesture.MousePointer))
	}
	a.lastX, a.lastY = x, y
}

func (a *App) emit(ev gesture.Event) {
	if ev == gesture.None || ev == gesture.Panned {
		return
	}
	a.log.Debug("gesture", "event", ev, "viewBox", a.view.ViewBox().String())
}

func (a *App) exportView() {
	path, err := a.export(svgdoc.Document{ViewBox: a.view.ViewBox(), Config: a.cfg})
	switch {
	case errors.Is(err, export.ErrUnsupported):
	case err != nil:
		a.lastErr = err
		a.log.Warn("export failed", "err", err)
	case path != "":
		a.lastErr = nil
		a.saved = path
		a.log.Info("exported view", "path", path)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
