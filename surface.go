package main

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type CompositeOp int

const (
	CompositeSourceOver CompositeOp = iota
	// CompositeDestinationOut removes coverage from what is already painted.
	CompositeDestinationOut
)

// Surface is a transparent raster layer. It is a cache of whatever was painted
// onto it and is never the source of truth for its content.
type Surface struct {
	img *image.RGBA
	dc  *gg.Context
	op  CompositeOp
}

func NewSurface(width, height int) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{
		img: img,
		dc:  gg.NewContextForRGBA(img),
	}
}

func (s *Surface) Width() int  { return s.img.Rect.Dx() }
func (s *Surface) Height() int { return s.img.Rect.Dy() }

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *Surface) SetComposite(op CompositeOp) { s.op = op }

func (s *Surface) Composite() CompositeOp { return s.op }

// StrokePath paints pts as one path with round caps and joins using the
// current compositing operation. A single point paints a round dot. col is
// ignored when erasing.
func (s *Surface) StrokePath(pts []Point, col color.Color, width float64) {
	if len(pts) == 0 || width <= 0 {
		return
	}
	if s.op == CompositeDestinationOut {
		s.erasePath(pts, width)
		return
	}
	s.dc.SetColor(col)
	tracePath(s.dc, pts, width, 0, 0)
}

// erasePath renders the path into an alpha mask covering only its bounding
// box and scales the surface pixels under it by the inverse coverage. The
// pixels are premultiplied, so scaling all four channels keeps them valid.
func (s *Surface) erasePath(pts []Point, width float64) {
	r := pathBounds(pts, width).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	mc := gg.NewContext(r.Dx(), r.Dy())
	mc.SetColor(color.White)
	tracePath(mc, pts, width, float64(r.Min.X), float64(r.Min.Y))
	mask := mc.AsMask()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := mask.AlphaAt(x-r.Min.X, y-r.Min.Y).A
			if a == 0 {
				continue
			}
			keep := uint16(255 - a)
			i := s.img.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				s.img.Pix[i+c] = uint8(uint16(s.img.Pix[i+c]) * keep / 255)
			}
		}
	}
}

// tracePath draws pts onto dc shifted by (-ox, -oy) and fills or strokes it
// with the context's current color.
func tracePath(dc *gg.Context, pts []Point, width, ox, oy float64) {
	if len(pts) == 1 {
		dc.DrawCircle(pts[0].X-ox, pts[0].Y-oy, width/2)
		dc.Fill()
		return
	}
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		dc.LineTo(p.X-ox, p.Y-oy)
	}
	dc.Stroke()
}

func pathBounds(pts []Point, width float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	pad := width/2 + 2
	return image.Rect(
		int(math.Floor(minX-pad)),
		int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)),
		int(math.Ceil(maxY+pad)),
	)
}
