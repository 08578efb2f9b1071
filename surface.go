// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import (
	"image"
	"log"

	"github.com/gogpu/gg"
)

// Surface is what the doodle paints on. Everything painted is opaque, so
// drawing over existing pixels replaces them.
type Surface interface {
	SetSource(c rgb)
	SetLineWidth(w float64)
	FillRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1 float64)
	Paint()
}

type canvas struct {
	dc       *gg.Context
	source   rgb
	backdrop *gg.ImageBuf

	dirty bool
	frame *image.RGBA
}

func newCanvas(width, height int) *canvas {
	return &canvas{dc: gg.NewContext(width, height), dirty: true}
}

func (c *canvas) setBackdrop(img image.Image) {
	if img == nil {
		c.backdrop = nil
		return
	}
	c.backdrop = gg.ImageBufFromImage(img)
}

func (c *canvas) resize(width, height int) error {
	c.dirty = true
	return c.dc.Resize(width, height)
}

func (c *canvas) size() image.Point {
	return image.Point{c.dc.Width(), c.dc.Height()}
}

func (c *canvas) SetSource(col rgb) {
	c.source = col
	c.dc.SetRGB(col.R, col.G, col.B)
}

func (c *canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *canvas) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.dc.DrawRectangle(x, y, w, h)
	if err := c.dc.Fill(); err != nil {
		log.Printf("Couldn't fill rectangle at %.1f,%.1f: %v\n", x, y, err)
	}
	c.dirty = true
}

func (c *canvas) StrokeLine(x0, y0, x1, y1 float64) {
	c.dc.DrawLine(x0, y0, x1, y1)
	if err := c.dc.Stroke(); err != nil {
		log.Printf("Couldn't stroke line: %v\n", err)
	}
	c.dirty = true
}

// Paint covers the whole surface with the source color, or with the
// backdrop snapshot if there is one.
func (c *canvas) Paint() {
	c.dc.ClearWithColor(gg.RGB(c.source.R, c.source.G, c.source.B))
	if c.backdrop != nil {
		c.dc.DrawImage(c.backdrop, 0, 0)
	}
	c.dirty = true
}

// Image returns the current contents for blitting. The copy is only redone
// after something was drawn.
func (c *canvas) Image() *image.RGBA {
	if c.dirty || c.frame == nil {
		c.frame = c.dc.ResizeTarget().ToImage()
		c.dirty = false
	}
	return c.frame
}
