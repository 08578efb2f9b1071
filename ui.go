// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"image"
	"log"

	"github.com/aarzilli/nucular"
	"github.com/aarzilli/nucular/rect"
	nstyle "github.com/aarzilli/nucular/style"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

type doodlecontext struct {
	config       *config
	geo          geometry
	canvas       *canvas
	doodle       *doodle
	masterWindow *nucular.MasterWindow

	exposed bool
	lastPos image.Point
}

func updatefn(ctx *doodlecontext, w *nucular.Window) {
	w.RowScaled(w.Bounds.H).Dynamic(1)
	bounds, out := w.Custom(nstyle.WidgetStateInactive)
	if out == nil {
		return
	}

	if sz := ctx.canvas.size(); !ctx.exposed || sz.X != bounds.W || sz.Y != bounds.H {
		exposeCanvas(ctx, bounds)
	}

	in := w.Input()
	for _, ev := range pointerEvents(ctx, &in.Mouse, bounds.Min()) {
		ctx.doodle.handle(ev)
	}

	if in.Keyboard.Pressed(key.CodeEscape) {
		log.Println("Escape pressed, closing")
		go (*ctx.masterWindow).Close()
	}

	out.DrawImage(bounds, ctx.canvas.Image())
}

// exposeCanvas runs when the widget first shows up or changes size. The
// canvas contents are gone either way.
func exposeCanvas(ctx *doodlecontext, bounds rect.Rect) {
	if bounds.W > 0 && bounds.H > 0 {
		if err := ctx.canvas.resize(bounds.W, bounds.H); err != nil {
			log.Printf("Couldn't resize canvas: %v\n", err)
		}
	}
	log.Printf("Surface exposed at %dx%d\n", bounds.W, bounds.H)
	ctx.exposed = true
	ctx.doodle.handle(exposeEvent{})
}

// pointerEvents turns the mouse state nucular collected since the last
// frame into press, motion and release events, in that order. A click
// that went down and up within one frame yields both a press and a
// release.
func pointerEvents(ctx *doodlecontext, m *nucular.MouseInput, origin image.Point) []event {
	var events []event
	local := func(p image.Point) (float64, float64) {
		p = p.Sub(origin)
		return float64(p.X), float64(p.Y)
	}

	btn := m.Buttons[mouse.ButtonLeft]
	if btn.Clicked && (btn.Down || !ctx.doodle.painting) {
		x, y := local(btn.ClickedPos)
		events = append(events, pressEvent{x, y})
	}

	if m.Pos != ctx.lastPos {
		x, y := local(m.Pos)
		events = append(events, motionEvent{x, y})
		ctx.lastPos = m.Pos
	}

	if btn.Clicked && !btn.Down {
		x, y := local(m.Pos)
		events = append(events, releaseEvent{x, y})
	}
	return events
}
