// Package game is the ebiten front end: it polls pointer input, feeds the
// gesture tracker and draws the canvas through the current viewBox.
package game

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/export"
	"github.com/iburimskiy/svg-pan/internal/gesture"
	"github.com/iburimskiy/svg-pan/internal/svgdoc"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

// Sounder gives feedback for gesture events.
type Sounder interface {
	Play(ev gesture.Event)
}

// Exporter saves a document and returns where it went ("" if cancelled).
type Exporter func(doc svgdoc.Document) (string, error)

type Game struct {
	cfg    *config.Config
	log    *slog.Logger
	sound  Sounder
	export Exporter

	view   *gesture.View
	layout canvasLayout

	screenW, screenH int

	// input edge detection
	prevKey  map[ebiten.Key]bool
	lastPos  map[gesture.PointerID]viewport.Point
	touchIDs []ebiten.TouchID

	lastErr    error
	lastExport string
}

// Option configures a Game.
type Option func(*Game)

// WithSound plays s on gesture start and end.
func WithSound(s Sounder) Option {
	return func(g *Game) { g.sound = s }
}

// WithExporter replaces the native save dialog.
func WithExporter(e Exporter) Option {
	return func(g *Game) { g.export = e }
}

func NewGame(cfg *config.Config, log *slog.Logger, opts ...Option) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	w, h := screenSize(cfg.CanvasSize)
	g := &Game{
		cfg:     cfg,
		log:     log,
		export:  export.Save,
		screenW: w,
		screenH: h,
		layout:  newCanvasLayout(cfg.CanvasSize, w, h),
		prevKey: map[ebiten.Key]bool{},
		lastPos: map[gesture.PointerID]viewport.Point{},
	}
	g.view = gesture.NewView(g.layout.ctm)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ScreenSize is the window size the game wants.
func (g *Game) ScreenSize() (int, int) { return g.screenW, g.screenH }

// Center is the current viewport center.
func (g *Game) Center() viewport.Center { return g.view.Center }

func (g *Game) Update() error {
	return g.handleInput(g.pollInput())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

func (g *Game) emit(ev gesture.Event) {
	switch ev {
	case gesture.None:
		return
	case gesture.Panned:
		// every move; too chatty even for debug
	default:
		g.log.Debug("gesture", "event", ev, "viewBox", g.view.ViewBox().String())
	}
	if g.sound != nil {
		g.sound.Play(ev)
	}
}

func (g *Game) document() svgdoc.Document {
	return svgdoc.Document{ViewBox: g.view.ViewBox(), Config: g.cfg}
}

func (g *Game) exportView() {
	if g.export == nil {
		return
	}
	path, err := g.export(g.document())
	switch {
	case errors.Is(err, export.ErrUnsupported):
		g.log.Debug("export unavailable")
	case err != nil:
		g.lastErr = err
		g.log.Warn("export failed", "err", err)
	case path != "":
		g.lastErr = nil
		g.lastExport = path
		g.log.Info("exported view", "path", path, "viewBox", g.view.ViewBox().String())
	}
}
