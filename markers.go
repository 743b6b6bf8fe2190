package main

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

var teamColors = [numTeams]color.RGBA{
	TeamRed:  {R: 0xff, A: 0xff},
	TeamBlue: {B: 0xff, A: 0xff},
}

// markerHandle is the presentation side of a marker. The manager owns it; the
// Marker value itself carries no rendering state.
type markerHandle struct {
	label  string
	sprite image.Image
}

type dragState struct {
	active  bool
	key     markerKey
	offsetX float64
	offsetY float64
}

// MarkerManager owns the placed markers, their handles and the per-team
// numbering.
type MarkerManager struct {
	markers  []Marker
	handles  map[markerKey]*markerHandle
	counters [numTeams]int
	width    float64
	height   float64
	drag     dragState
}

func NewMarkerManager(width, height int) *MarkerManager {
	return &MarkerManager{
		handles: make(map[markerKey]*markerHandle),
		width:   float64(width),
		height:  float64(height),
	}
}

// Markers returns the markers bottom to top. Callers must not modify it.
func (mm *MarkerManager) Markers() []Marker { return mm.markers }

func (mm *MarkerManager) Count(team Team) int {
	n := 0
	for _, m := range mm.markers {
		if m.Team == team {
			n++
		}
	}
	return n
}

// Place adds the next marker of team centered on p.
func (mm *MarkerManager) Place(p Point, team Team) Marker {
	mm.counters[team]++
	m := Marker{ID: mm.counters[team], Team: team, X: p.X, Y: p.Y}
	mm.markers = append(mm.markers, m)
	mm.handles[m.key()] = newMarkerHandle(m)
	return m
}

// HitTest finds the topmost marker whose box contains p.
func (mm *MarkerManager) HitTest(p Point) (markerKey, bool) {
	half := markerSize / 2
	for i := len(mm.markers) - 1; i >= 0; i-- {
		m := mm.markers[i]
		if math.Abs(p.X-m.X) <= half && math.Abs(p.Y-m.Y) <= half {
			return m.key(), true
		}
	}
	return markerKey{}, false
}

func (mm *MarkerManager) Get(key markerKey) (Marker, bool) {
	if i := mm.index(key); i >= 0 {
		return mm.markers[i], true
	}
	return Marker{}, false
}

func (mm *MarkerManager) Handle(key markerKey) *markerHandle {
	return mm.handles[key]
}

func (mm *MarkerManager) BeginDrag(key markerKey, p Point) bool {
	m, ok := mm.Get(key)
	if !ok {
		return false
	}
	mm.drag = dragState{active: true, key: key, offsetX: m.X - p.X, offsetY: m.Y - p.Y}
	return true
}

func (mm *MarkerManager) Dragging() bool { return mm.drag.active }

// DragTo moves the dragged marker so it follows p, keeping the grab offset.
func (mm *MarkerManager) DragTo(p Point) {
	if !mm.drag.active {
		return
	}
	i := mm.index(mm.drag.key)
	if i < 0 {
		mm.drag = dragState{}
		return
	}
	mm.markers[i].X, mm.markers[i].Y = mm.clamp(p.X+mm.drag.offsetX, p.Y+mm.drag.offsetY)
}

func (mm *MarkerManager) EndDrag() bool {
	was := mm.drag.active
	mm.drag = dragState{}
	return was
}

// Remove drops the marker and its handle. The team counter is left alone so
// numbers are never handed out twice.
func (mm *MarkerManager) Remove(key markerKey) bool {
	i := mm.index(key)
	if i < 0 {
		return false
	}
	mm.markers = append(mm.markers[:i], mm.markers[i+1:]...)
	delete(mm.handles, key)
	if mm.drag.active && mm.drag.key == key {
		mm.drag = dragState{}
	}
	return true
}

// Reset removes every marker and restarts numbering for both teams.
func (mm *MarkerManager) Reset() {
	mm.markers = nil
	mm.handles = make(map[markerKey]*markerHandle)
	mm.counters = [numTeams]int{}
	mm.drag = dragState{}
}

// Resize records new bounds and pulls markers back inside them.
func (mm *MarkerManager) Resize(width, height int) {
	mm.width = float64(width)
	mm.height = float64(height)
	for i := range mm.markers {
		mm.markers[i].X, mm.markers[i].Y = mm.clamp(mm.markers[i].X, mm.markers[i].Y)
	}
}

// clamp keeps the whole marker box inside the bounds. When the bounds are
// smaller than a marker it is pinned to the top left.
func (mm *MarkerManager) clamp(x, y float64) (float64, float64) {
	half := markerSize / 2
	return clampRange(x, half, mm.width-half), clampRange(y, half, mm.height-half)
}

func (mm *MarkerManager) index(key markerKey) int {
	for i, m := range mm.markers {
		if m.key() == key {
			return i
		}
	}
	return -1
}

func clampRange(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

var (
	markerFaceOnce sync.Once
	markerFace     font.Face
)

func markerFontFace() font.Face {
	markerFaceOnce.Do(func() {
		f, err := truetype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		markerFace = truetype.NewFace(f, &truetype.Options{
			Size:    16,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return markerFace
}

func newMarkerHandle(m Marker) *markerHandle {
	label := strconv.Itoa(m.ID)
	size := int(markerSize)
	dc := gg.NewContext(size, size)
	c := markerSize / 2

	dc.DrawCircle(c, c, c-2)
	dc.SetColor(teamColors[m.Team])
	dc.FillPreserve()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.Stroke()

	if face := markerFontFace(); face != nil {
		dc.SetFontFace(face)
		dc.DrawStringAnchored(label, c, c, 0.5, 0.35)
	}
	return &markerHandle{label: label, sprite: dc.Image()}
}
