// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"math"
)

type brush int

const (
	brushSquare brush = iota
	brushCircle
)

func (b brush) String() string {
	switch b {
	case brushSquare:
		return "square"
	case brushCircle:
		return "circle"
	}
	return "unknown"
}

// event is one of pressEvent, releaseEvent, motionEvent or exposeEvent.
// Coordinates are local to the drawing surface.
type event interface {
	isEvent()
}

type pressEvent struct{ X, Y float64 }
type releaseEvent struct{ X, Y float64 }
type motionEvent struct{ X, Y float64 }

// exposeEvent means the surface contents were lost and need a full repaint.
type exposeEvent struct{}

func (pressEvent) isEvent()   {}
func (releaseEvent) isEvent() {}
func (motionEvent) isEvent()  {}
func (exposeEvent) isEvent()  {}

type doodle struct {
	surface Surface
	geo     geometry

	brush      brush
	foreground rgb
	background rgb
	lineWidth  int

	painting bool
	x, y     float64
}

func newDoodle(s Surface, g geometry, conf *config) *doodle {
	return &doodle{
		surface:    s,
		geo:        g,
		brush:      brushSquare,
		foreground: conf.foreground(),
		background: conf.background(),
		lineWidth:  conf.LineWidth,
	}
}

func (d *doodle) handle(ev event) {
	switch e := ev.(type) {
	case pressEvent:
		d.press(e)
	case releaseEvent:
		d.painting = false
	case motionEvent:
		d.moveTo(e.X, e.Y)
		if d.painting {
			d.draw()
		}
	case exposeEvent:
		d.clear()
	default:
		log.Printf("Ignoring unknown event %T\n", ev)
	}
}

func (d *doodle) press(e pressEvent) {
	d.painting = true
	if !d.geo.inBar(e.Y) {
		d.moveTo(e.X, e.Y)
		d.draw()
		return
	}
	if d.geo.inGradient(e.X) {
		d.setForeground(d.geo.colorAt(e.X))
		d.setLineWidth(e.Y)
		log.Printf("Picked color %.3f,%.3f,%.3f width %d\n", d.foreground.R, d.foreground.G, d.foreground.B, d.lineWidth)
		return
	}
	log.Println("Clearing surface")
	d.clear()
}

// moveTo keeps the brush entirely below the color bar.
func (d *doodle) moveTo(x, y float64) {
	d.x = x
	d.y = math.Max(y, float64(d.geo.BarHeight+d.lineWidth/2))
}

func (d *doodle) setForeground(c rgb) {
	d.foreground = c
	d.update()
}

func (d *doodle) setLineWidth(w float64) {
	d.lineWidth = int(w)
}

// update restores the stroke source after something else drew with
// another color.
func (d *doodle) update() {
	d.surface.SetSource(d.foreground)
}

func (d *doodle) clear() {
	d.surface.SetSource(d.background)
	d.surface.Paint()
	drawColorbar(d.surface, d.geo)
	d.update()
}

func (d *doodle) draw() {
	switch d.brush {
	case brushCircle:
		// TODO: circle brush has no fill geometry yet; it paints nothing.
	case brushSquare:
		half := float64(d.lineWidth / 2)
		w := float64(d.lineWidth)
		d.surface.FillRect(d.x-half, d.y-half, w, w)
	}
}
