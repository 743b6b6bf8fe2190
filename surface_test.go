package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red    = color.RGBA{R: 0xff, A: 0xff}
	green  = color.RGBA{G: 0xff, A: 0xff}
	blank  = color.RGBA{}
	yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)

func TestSurfaceStrokePathPaints(t *testing.T) {
	s := NewSurface(100, 60)
	s.StrokePath([]Point{{10, 20}, {50, 20}}, red, 6)

	assert.Equal(t, red, s.Image().RGBAAt(30, 20))
	assert.Equal(t, blank, s.Image().RGBAAt(30, 40))
}

func TestSurfaceSinglePointPaintsDot(t *testing.T) {
	s := NewSurface(40, 40)
	s.StrokePath([]Point{{20, 20}}, red, 10)

	assert.Equal(t, red, s.Image().RGBAAt(20, 20))
	assert.Equal(t, red, s.Image().RGBAAt(22, 20))
	assert.Equal(t, blank, s.Image().RGBAAt(30, 20))
}

func TestSurfaceDestinationOutRemovesCoverage(t *testing.T) {
	s := NewSurface(100, 60)
	s.StrokePath([]Point{{10, 20}, {90, 20}}, red, 10)

	s.SetComposite(CompositeDestinationOut)
	s.StrokePath([]Point{{50, 5}, {50, 35}}, red, 8)

	assert.Equal(t, blank, s.Image().RGBAAt(50, 20))
	assert.Equal(t, red, s.Image().RGBAAt(70, 20))
}

func TestSurfaceEraseOffSurfaceIsIgnored(t *testing.T) {
	s := NewSurface(20, 20)
	s.StrokePath([]Point{{10, 10}}, red, 4)
	s.SetComposite(CompositeDestinationOut)

	assert.NotPanics(t, func() {
		s.StrokePath([]Point{{-100, -100}, {-50, -60}}, red, 4)
	})
	assert.Equal(t, red, s.Image().RGBAAt(10, 10))
}

func TestSurfaceClearLeavesTransparent(t *testing.T) {
	s := NewSurface(30, 30)
	s.StrokePath([]Point{{0, 0}, {30, 30}}, red, 8)
	s.Clear()

	for _, b := range s.Image().Pix {
		if b != 0 {
			t.Fatalf("expected cleared surface, found non-zero byte")
		}
	}
}
