package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct{ X, Y, W, H float64 }

type fill struct {
	rect  box
	color rgb
}

// recordingSurface remembers every draw call so tests can check what the
// doodle painted without a display.
type recordingSurface struct {
	source    rgb
	lineWidth float64
	ops       []interface{}
}

type paintOp struct{ color rgb }
type lineOp [4]float64

func (s *recordingSurface) SetSource(c rgb)        { s.source = c }
func (s *recordingSurface) SetLineWidth(w float64) { s.lineWidth = w }
func (s *recordingSurface) FillRect(x, y, w, h float64) {
	s.ops = append(s.ops, fill{box{x, y, w, h}, s.source})
}
func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float64) {
	s.ops = append(s.ops, lineOp{x0, y0, x1, y1})
}
func (s *recordingSurface) Paint() { s.ops = append(s.ops, paintOp{s.source}) }

func (s *recordingSurface) fills() []fill {
	var out []fill
	for _, op := range s.ops {
		if f, ok := op.(fill); ok {
			out = append(out, f)
		}
	}
	return out
}

func (s *recordingSurface) lines() [][4]float64 {
	var out [][4]float64
	for _, op := range s.ops {
		if l, ok := op.(lineOp); ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *recordingSurface) paints() []paintOp {
	var out []paintOp
	for _, op := range s.ops {
		if p, ok := op.(paintOp); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *recordingSurface) reset() { s.ops = nil }

// 1000x400 screen: the bar is 20px high and the clear button starts at 980.
func newTestDoodle() (*doodle, *recordingSurface) {
	conf := defaultConfig()
	s := &recordingSurface{}
	d := newDoodle(s, newGeometry(1000, 400), &conf)
	d.handle(exposeEvent{})
	s.reset()
	return d, s
}

func TestPressInBarPicksColorAndWidth(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 490, Y: 12.7})

	assertColor(t, d.geo.colorAt(490), d.foreground)
	assert.Equal(t, 12, d.lineWidth)
	assertColor(t, d.foreground, s.source)
	assert.Empty(t, s.fills(), "picking a color must not paint")
	assert.True(t, d.painting)
}

func TestPressAtGradientEdgePicksLastColor(t *testing.T) {
	d, _ := newTestDoodle()

	d.handle(pressEvent{X: 980, Y: 3})

	assertColor(t, gradient[len(gradient)-1], d.foreground)
	assert.Equal(t, 3, d.lineWidth)
}

func TestPressInClearRegion(t *testing.T) {
	d, s := newTestDoodle()
	d.handle(pressEvent{X: 100, Y: 8})
	d.handle(releaseEvent{X: 100, Y: 8})
	picked := d.foreground
	s.reset()

	d.handle(pressEvent{X: 990, Y: 10})

	paints := s.paints()
	require.Len(t, paints, 1)
	assertColor(t, d.background, paints[0].color)
	_, ok := s.ops[0].(paintOp)
	assert.True(t, ok, "background must be painted before the bar")
	assert.Len(t, s.fills(), d.geo.gradientSpan())
	assert.Len(t, s.lines(), 2)

	assertColor(t, picked, d.foreground)
	assertColor(t, picked, s.source)
	assert.Equal(t, 8, d.lineWidth)
}

func TestClickWithoutMotionFillsOnce(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 300, Y: 200})
	d.handle(releaseEvent{X: 300, Y: 200})

	fills := s.fills()
	require.Len(t, fills, 1)
	assert.Equal(t, box{298, 198, 5, 5}, fills[0].rect)
	assertColor(t, d.foreground, fills[0].color)
	assert.False(t, d.painting)
}

func TestDragFillsAtPressAndMotion(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 300, Y: 200})
	d.handle(motionEvent{X: 310, Y: 250})

	fills := s.fills()
	require.Len(t, fills, 2)
	assert.Equal(t, box{298, 198, 5, 5}, fills[0].rect)
	assert.Equal(t, box{308, 248, 5, 5}, fills[1].rect)
}

func TestMotionIsClampedBelowBar(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 300, Y: 200})
	d.handle(motionEvent{X: 310, Y: 4})

	assert.Equal(t, 22.0, d.y)
	fills := s.fills()
	require.Len(t, fills, 2)
	// centered on y = barHeight + lineWidth/2
	assert.Equal(t, box{308, 20, 5, 5}, fills[1].rect)
}

func TestMotionWithoutPressOnlyTracks(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(motionEvent{X: 50, Y: 60})
	d.handle(motionEvent{X: 51, Y: 61})

	assert.Empty(t, s.ops)
	assert.Equal(t, 51.0, d.x)
	assert.Equal(t, 61.0, d.y)
}

func TestReleaseStopsPainting(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 300, Y: 200})
	d.handle(releaseEvent{X: 300, Y: 200})
	d.handle(motionEvent{X: 320, Y: 220})

	assert.Len(t, s.fills(), 1)
}

func TestDragAfterPickingInBarPaintsBelowIt(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 200, Y: 10})
	d.handle(motionEvent{X: 205, Y: 12})

	fills := s.fills()
	require.Len(t, fills, 1)
	assert.Equal(t, box{200, 20, 10, 10}, fills[0].rect)
	assertColor(t, d.geo.colorAt(200), fills[0].color)
}

func TestExposeRepaintsBackgroundAndBar(t *testing.T) {
	d, s := newTestDoodle()
	d.handle(pressEvent{X: 700, Y: 15})

	d.handle(exposeEvent{})

	require.Len(t, s.paints(), 1)
	assertColor(t, d.background, s.paints()[0].color)
	assert.Len(t, s.fills(), 980)
	assert.Len(t, s.lines(), 2)
	assertColor(t, d.foreground, s.source)
}

func TestCircleBrushPaintsNothing(t *testing.T) {
	d, s := newTestDoodle()
	d.brush = brushCircle

	d.handle(pressEvent{X: 300, Y: 200})
	d.handle(motionEvent{X: 310, Y: 210})

	assert.Empty(t, s.fills())
	assert.Equal(t, "circle", d.brush.String())
}

func TestZeroWidthPickPaintsNothingVisible(t *testing.T) {
	d, s := newTestDoodle()

	d.handle(pressEvent{X: 10, Y: 0.4})
	d.handle(motionEvent{X: 300, Y: 300})

	assert.Equal(t, 0, d.lineWidth)
	fills := s.fills()
	require.Len(t, fills, 1)
	assert.Equal(t, box{300, 300, 0, 0}, fills[0].rect)
}
