package main

import (
	"image/color"
	"time"

	"github.com/rs/zerolog"
)

type Point struct {
	X, Y float64
}

// Stroke is one finalized freehand gesture. Points are in surface pixels.
type Stroke struct {
	Points []Point
	Color  color.RGBA
	Width  float64
	Kind   StrokeKind
}

// lineWidth is the width the stroke is painted with; erasing uses a wider nib.
func (s Stroke) lineWidth() float64 {
	if s.Kind == StrokeErase {
		return s.Width * eraseFactor
	}
	return s.Width
}

type Marker struct {
	ID   int
	Team Team
	X    float64
	Y    float64
}

type markerKey struct {
	Team Team
	ID   int
}

func (m Marker) key() markerKey {
	return markerKey{Team: m.Team, ID: m.ID}
}

type Brush struct {
	Color color.RGBA
	Size  float64
}

// Affordance is what the chrome shows for the active mode.
type Affordance struct {
	Active Mode
	Cursor CursorKind
}

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	pointerHeld    bool
	session        *Session
	config         *Config
	log            zerolog.Logger
	help           bool
	helpScroll     int
	confirming     bool
	confirmAction  ConfirmAction
	paletteIndex   int
	errorMessage   string
	successMessage string
	cache          *boardCache
	now            func() time.Time
}

type boardCache struct {
	rev    uint64
	cols   int
	rows   int
	cells  [][]string
	filled bool
}
