// This file is part of the program "ScreenDoodle".
// Please see the LICENSE file for copyright information.

package main

import "math"

type rgb struct {
	R, G, B float64
}

// the three ramps are 256 entries each: red->blue, blue->green, green->red
const rampSize = 256

var gradient = buildGradient()

func buildGradient() []rgb {
	colors := make([]rgb, 0, 3*rampSize)
	for i := 0; i < rampSize; i++ {
		v := float64(i) / 255.0
		colors = append(colors, rgb{1 - v, 0, v})
	}
	for i := 0; i < rampSize; i++ {
		v := float64(i) / 255.0
		colors = append(colors, rgb{0, v, 1 - v})
	}
	for i := 0; i < rampSize; i++ {
		v := float64(i) / 255.0
		colors = append(colors, rgb{v, 1 - v, 0})
	}
	return colors
}

type geometry struct {
	Width     int
	Height    int
	BarHeight int
}

func newGeometry(width, height int) geometry {
	return geometry{Width: width, Height: height, BarHeight: height / 20}
}

// gradientSpan is the part of the bar that picks colors. The square to its
// right is the clear button.
func (g geometry) gradientSpan() int {
	return g.Width - g.BarHeight
}

func (g geometry) colorIndex(x float64, n int) int {
	span := float64(g.gradientSpan())
	if span <= 0 {
		return n - 1
	}
	x = math.Max(0, math.Min(x, span))
	return int(math.Floor(x * float64(n-1) / span))
}

// colorAt returns the gradient color shown at column x of the bar.
func (g geometry) colorAt(x float64) rgb {
	return gradient[g.colorIndex(x, len(gradient))]
}

func (g geometry) inBar(y float64) bool {
	return y <= float64(g.BarHeight)
}

func (g geometry) inGradient(x float64) bool {
	return x <= float64(g.gradientSpan())
}

func drawColorbar(s Surface, g geometry) {
	bh := float64(g.BarHeight)
	for i := 0; i < g.gradientSpan(); i++ {
		s.SetSource(g.colorAt(float64(i)))
		s.FillRect(float64(i), 0, 1, bh)
	}

	left, right := float64(g.gradientSpan()), float64(g.Width)
	s.SetLineWidth(crossLineWidth)
	s.StrokeLine(left, 0, right, bh)
	s.StrokeLine(left, bh, right, 0)
}

const crossLineWidth = 2
