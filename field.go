package main

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

const (
	fieldMargin     = 20.0
	fieldLineWidth  = 2.0
	centerRadius    = 60.0
	spotRadius      = 3.0
	penaltyWidth    = 120.0
	penaltyHeight   = 150.0
	goalWidth       = 60.0
	goalHeight      = 80.0
	penaltySpotDist = 90.0
	fieldGreen      = "#2d7a2e"
)

// renderField paints the pitch for the given surface size. The result depends
// on nothing but the dimensions.
func renderField(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dc := gg.NewContextForRGBA(img)
	w := float64(width)
	h := float64(height)

	dc.SetHexColor(fieldGreen)
	dc.Clear()

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(fieldLineWidth)

	// Outer border
	dc.DrawRectangle(fieldMargin, fieldMargin, w-2*fieldMargin, h-2*fieldMargin)
	dc.Stroke()

	// Center line
	dc.DrawLine(w/2, fieldMargin, w/2, h-fieldMargin)
	dc.Stroke()

	dc.DrawCircle(w/2, h/2, centerRadius)
	dc.Stroke()
	drawSpot(dc, w/2, h/2)

	// Penalty areas
	dc.DrawRectangle(fieldMargin, (h-penaltyHeight)/2, penaltyWidth, penaltyHeight)
	dc.Stroke()
	dc.DrawRectangle(w-fieldMargin-penaltyWidth, (h-penaltyHeight)/2, penaltyWidth, penaltyHeight)
	dc.Stroke()

	// Goal areas
	dc.DrawRectangle(fieldMargin, (h-goalHeight)/2, goalWidth, goalHeight)
	dc.Stroke()
	dc.DrawRectangle(w-fieldMargin-goalWidth, (h-goalHeight)/2, goalWidth, goalHeight)
	dc.Stroke()

	drawSpot(dc, fieldMargin+penaltySpotDist, h/2)
	drawSpot(dc, w-fieldMargin-penaltySpotDist, h/2)

	return img
}

func drawSpot(dc *gg.Context, x, y float64) {
	dc.DrawArc(x, y, spotRadius, 0, 2*math.Pi)
	dc.Fill()
}
