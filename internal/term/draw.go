package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/viewport"
)

func (a *App) draw() {
	a.screen.Clear()
	a.drawStatus()
	if !a.layout.empty() {
		a.drawFrame()
		a.drawCanvas()
	}
	a.screen.Show()
}

func (a *App) drawStatus() {
	status := "viewBox " + a.view.ViewBox().String() + "  drag: pan  r: reset  e: export  q: quit"
	if a.saved != "" {
		status += "  saved " + a.saved
	}
	if a.lastErr != nil {
		status += "  error: " + a.lastErr.Error()
	}
	w, _ := a.screen.Size()
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		a.screen.SetContent(col, 0, r, nil, tcell.StyleDefault)
		col++
	}
}

func (a *App) drawFrame() {
	l := a.layout
	style := tcell.StyleDefault.Foreground(rgb(a.cfg.BorderColor))
	left, right := l.x-1, l.x+l.w
	top, bottom := l.y-1, l.y+l.h
	for x := l.x; x < right; x++ {
		a.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		a.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := l.y; y < bottom; y++ {
		a.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		a.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (a *App) drawCanvas() {
	l := a.layout
	ctm := l.ctm(a.view.ViewBox())
	if ctm == nil {
		return
	}
	bg := tcell.StyleDefault.Background(rgb(a.cfg.Background))
	fill := tcell.StyleDefault.Foreground(rgb(a.cfg.CircleFill)).Background(rgb(a.cfg.Background))
	for y := l.y; y < l.y+l.h; y++ {
		for x := l.x; x < l.x+l.w; x++ {
			local, ok := viewport.ToLocal(ctm, cellCenter(x, y))
			if ok && inCircle(local) {
				a.screen.SetContent(x, y, '█', nil, fill)
			} else {
				a.screen.SetContent(x, y, ' ', nil, bg)
			}
		}
	}
}

func inCircle(p viewport.Point) bool {
	dx, dy := p.X-config.CircleCX, p.Y-config.CircleCY
	return dx*dx+dy*dy <= config.CircleRadius*config.CircleRadius
}
