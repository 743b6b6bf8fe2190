package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(SessionOptions{
		Width:       400,
		Height:      300,
		Brush:       Brush{Color: red, Size: 4},
		DoubleClick: 400 * time.Millisecond,
		Logger:      zerolog.Nop(),
	})
}

func click(s *Session, p Point, at time.Time) {
	s.PointerDown(p, at)
	s.PointerUp(p)
}

func TestSessionPlacesMarkersForActiveTeam(t *testing.T) {
	s := newTestSession(t)

	click(s, Point{50, 50}, epoch)
	click(s, Point{120, 50}, epoch.Add(time.Second))
	s.SetMode(ModePlaceBlue)
	click(s, Point{200, 50}, epoch.Add(2*time.Second))

	markers := s.Markers().Markers()
	require.Len(t, markers, 3)
	assert.Equal(t, markerKey{TeamRed, 1}, markers[0].key())
	assert.Equal(t, markerKey{TeamRed, 2}, markers[1].key())
	assert.Equal(t, markerKey{TeamBlue, 1}, markers[2].key())
}

func TestSessionPressOnMarkerDrags(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{100, 100}, epoch)

	s.PointerDown(Point{102, 102}, epoch.Add(time.Second))
	s.PointerMove(Point{152, 122})
	s.PointerUp(Point{152, 122})

	markers := s.Markers().Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, 150.0, markers[0].X)
	assert.Equal(t, 120.0, markers[0].Y)
	assert.False(t, s.Markers().Dragging())
}

func TestSessionDoubleActivationRemovesMarker(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{100, 100}, epoch)

	click(s, Point{100, 100}, epoch.Add(time.Second))
	click(s, Point{101, 99}, epoch.Add(time.Second+200*time.Millisecond))

	assert.Empty(t, s.Markers().Markers())

	click(s, Point{100, 100}, epoch.Add(2*time.Second))
	assert.Equal(t, 2, s.Markers().Markers()[0].ID)
}

func TestSessionSlowSecondPressDoesNotRemove(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{100, 100}, epoch)

	click(s, Point{100, 100}, epoch.Add(time.Second))
	click(s, Point{100, 100}, epoch.Add(2*time.Second))

	assert.Len(t, s.Markers().Markers(), 1)
}

func TestSessionDoubleActivateInAnyMode(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{100, 100}, epoch)
	click(s, Point{300, 100}, epoch.Add(time.Second))

	s.SetMode(ModeDraw)
	assert.True(t, s.DoubleActivate(Point{100, 100}))
	s.SetMode(ModeErase)
	assert.True(t, s.DoubleActivate(Point{300, 100}))
	assert.False(t, s.DoubleActivate(Point{300, 100}))
	assert.Empty(t, s.Markers().Markers())
}

func TestSessionDrawModePressOnMarker(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{100, 100}, epoch)
	s.SetMode(ModeDraw)

	s.PointerDown(Point{105, 95}, epoch.Add(time.Second))
	assert.False(t, s.Annotator().Active())
	assert.False(t, s.Markers().Dragging())
	s.PointerMove(Point{150, 150})
	s.PointerUp(Point{150, 150})

	assert.Empty(t, s.Annotator().History())
	require.Len(t, s.Markers().Markers(), 1)
	assert.Equal(t, 100.0, s.Markers().Markers()[0].X)

	click(s, Point{100, 100}, epoch.Add(2*time.Second))
	click(s, Point{100, 100}, epoch.Add(2*time.Second+100*time.Millisecond))
	assert.Empty(t, s.Markers().Markers())
	assert.Empty(t, s.Annotator().History())
}

func TestSessionDrawModeCapturesStrokes(t *testing.T) {
	s := newTestSession(t)
	s.SetMode(ModeDraw)

	s.PointerDown(Point{10, 10}, epoch)
	s.PointerMove(Point{50, 10})
	s.PointerMove(Point{90, 30})
	s.PointerUp(Point{90, 30})

	history := s.Annotator().History()
	require.Len(t, history, 1)
	assert.Len(t, history[0].Points, 3)
	assert.Empty(t, s.Markers().Markers())
}

func TestSessionMovesWithoutGestureAreIgnored(t *testing.T) {
	s := newTestSession(t)
	rev := s.Revision()

	s.PointerMove(Point{10, 10})
	s.SetMode(ModeDraw)
	s.PointerMove(Point{20, 20})
	s.PointerUp(Point{20, 20})

	assert.Empty(t, s.Annotator().History())
	assert.Equal(t, rev+1, s.Revision())
}

func TestSessionMissedReleaseResolvesOnNextPress(t *testing.T) {
	s := newTestSession(t)
	s.SetMode(ModeDraw)

	s.PointerDown(Point{10, 10}, epoch)
	s.PointerMove(Point{50, 10})
	s.PointerDown(Point{10, 100}, epoch.Add(time.Second))
	s.PointerUp(Point{10, 100})

	require.Len(t, s.Annotator().History(), 2)
	assert.Len(t, s.Annotator().History()[0].Points, 2)
	assert.Len(t, s.Annotator().History()[1].Points, 1)
}

func TestSessionModeSwitchFinalizesStrokeUnderOldMode(t *testing.T) {
	s := newTestSession(t)
	s.SetMode(ModeErase)
	s.PointerDown(Point{10, 10}, epoch)
	s.PointerMove(Point{30, 10})

	s.SetMode(ModePlaceRed)
	s.PointerUp(Point{30, 10})

	require.Len(t, s.Annotator().History(), 1)
	assert.Equal(t, StrokeErase, s.Annotator().History()[0].Kind)
	assert.Empty(t, s.Markers().Markers())
}

func TestSessionUndoAndClear(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{200, 150}, epoch)
	s.SetMode(ModeDraw)
	click(s, Point{10, 10}, epoch)
	click(s, Point{20, 20}, epoch)

	assert.True(t, s.Undo())
	assert.Len(t, s.Annotator().History(), 1)

	s.Clear()
	assert.True(t, s.Empty())
	assert.False(t, s.Undo())

	s.SetMode(ModePlaceRed)
	click(s, Point{200, 150}, epoch.Add(time.Minute))
	assert.Equal(t, 1, s.Markers().Markers()[0].ID)
}

func TestSessionBrushSizeIsClamped(t *testing.T) {
	s := newTestSession(t)

	s.SetBrushSize(0)
	assert.Equal(t, float64(minBrushSize), s.Brush().Size)
	s.SetBrushSize(500)
	assert.Equal(t, float64(maxBrushSize), s.Brush().Size)
}

func TestSessionResizeRepaintsAndKeepsStrokes(t *testing.T) {
	s := newTestSession(t)
	s.SetMode(ModeDraw)
	s.PointerDown(Point{30, 100}, epoch)
	s.PointerMove(Point{80, 100})
	s.PointerUp(Point{80, 100})
	rev := s.Revision()

	s.Resize(640, 360)

	w, h := s.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)
	assert.Greater(t, s.Revision(), rev)

	frame := s.Frame()
	assert.Equal(t, 640, frame.Bounds().Dx())
	assert.Equal(t, 360, frame.Bounds().Dy())
	assert.Equal(t, pitchGreen, frame.RGBAAt(5, 5))
	assert.Equal(t, red, frame.RGBAAt(55, 100))
}

func TestSessionFrameDrawsMarkersOverField(t *testing.T) {
	s := newTestSession(t)
	click(s, Point{200, 150}, epoch)

	frame := s.Frame()
	assert.Equal(t, teamColors[TeamRed], frame.RGBAAt(188, 150))
	assert.Equal(t, pitchGreen, frame.RGBAAt(5, 5))
}
