package main

import (
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
)

type lastTap struct {
	key markerKey
	at  time.Time
	set bool
}

// Session is the whole state of one board: the mode, the brush, the markers,
// the strokes and the field they sit on. Pointer input is routed through it.
type Session struct {
	modes       *modeController
	brush       Brush
	markers     *MarkerManager
	annotator   *Annotator
	field       *image.RGBA
	width       int
	height      int
	doubleClick time.Duration
	tap         lastTap
	rev         uint64
	log         zerolog.Logger
}

type SessionOptions struct {
	Width       int
	Height      int
	Brush       Brush
	DoubleClick time.Duration
	Logger      zerolog.Logger
}

func NewSession(opts SessionOptions) *Session {
	w, h := clampSize(opts.Width, opts.Height)
	s := &Session{
		modes:       newModeController(ModePlaceRed),
		brush:       opts.Brush,
		markers:     NewMarkerManager(w, h),
		field:       renderField(w, h),
		width:       w,
		height:      h,
		doubleClick: opts.DoubleClick,
		log:         opts.Logger,
	}
	s.brush.Size = clampBrush(s.brush.Size)
	s.annotator = NewAnnotator(s, w, h)
	return s
}

func (s *Session) Mode() Mode { return s.modes.Mode() }

func (s *Session) Brush() Brush { return s.brush }

func (s *Session) Affordance() Affordance { return s.modes.Affordance() }

func (s *Session) Size() (int, int) { return s.width, s.height }

func (s *Session) Markers() *MarkerManager { return s.markers }

func (s *Session) Annotator() *Annotator { return s.annotator }

// Revision changes whenever something visible on the board changes.
func (s *Session) Revision() uint64 { return s.rev }

func (s *Session) touch() { s.rev++ }

// SetMode resolves any open drag or stroke under the old mode before
// switching.
func (s *Session) SetMode(mode Mode) {
	s.endGestures()
	s.modes.setMode(mode)
	s.tap = lastTap{}
	s.touch()
}

func (s *Session) SetColor(c color.RGBA) {
	s.brush.Color = c
	s.touch()
}

func (s *Session) SetBrushSize(size float64) {
	s.brush.Size = clampBrush(size)
	s.touch()
}

func (s *Session) PointerDown(p Point, at time.Time) {
	if s.markers.Dragging() || s.annotator.Active() {
		s.endGestures()
	}
	mode := s.Mode()
	if key, ok := s.markers.HitTest(p); ok {
		if s.isDoubleTap(key, at) {
			s.tap = lastTap{}
			s.DoubleActivate(p)
			return
		}
		s.tap = lastTap{key: key, at: at, set: true}
		// Markers sit above the drawing, so a press on one never starts a
		// stroke. Only placement modes can move them.
		if mode.placing() {
			s.markers.BeginDrag(key, p)
		}
		return
	}
	s.tap = lastTap{}
	switch {
	case mode.placing():
		m := s.markers.Place(p, teamFor(mode))
		s.log.Debug().Str("team", m.Team.String()).Int("id", m.ID).
			Float64("x", m.X).Float64("y", m.Y).Msg("marker placed")
	case mode.annotating():
		s.annotator.Begin(p)
	}
	s.touch()
}

func (s *Session) PointerMove(p Point) {
	switch {
	case s.markers.Dragging():
		s.markers.DragTo(p)
		s.touch()
	case s.annotator.Active():
		s.annotator.Extend(p)
		s.touch()
	}
}

func (s *Session) PointerUp(Point) {
	s.endGestures()
}

// DoubleActivate removes the marker under p, if any, in every mode.
func (s *Session) DoubleActivate(p Point) bool {
	key, ok := s.markers.HitTest(p)
	if !ok {
		return false
	}
	s.markers.Remove(key)
	s.log.Debug().Str("team", key.Team.String()).Int("id", key.ID).Msg("marker removed")
	s.touch()
	return true
}

func (s *Session) Undo() bool {
	s.endGestures()
	if !s.annotator.UndoLast() {
		return false
	}
	s.log.Debug().Int("strokes", len(s.annotator.History())).Msg("undo")
	s.touch()
	return true
}

// Clear wipes strokes and markers and restarts marker numbering. Callers are
// expected to have confirmed with the user.
func (s *Session) Clear() {
	s.endGestures()
	s.annotator.ClearAll()
	s.markers.Reset()
	s.tap = lastTap{}
	s.log.Debug().Msg("board cleared")
	s.touch()
}

// Empty reports whether there is nothing on the board but the field.
func (s *Session) Empty() bool {
	return len(s.annotator.History()) == 0 && len(s.markers.Markers()) == 0
}

// Resize repaints the field first and then replays the strokes onto a fresh
// annotation surface, so the layers stay in order.
func (s *Session) Resize(width, height int) {
	w, h := clampSize(width, height)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.field = renderField(w, h)
	s.annotator.Resize(w, h)
	s.markers.Resize(w, h)
	s.touch()
}

// Frame composites field, annotations and markers into a new image.
func (s *Session) Frame() *image.RGBA {
	frame := image.NewRGBA(s.field.Rect)
	dc := gg.NewContextForRGBA(frame)
	dc.DrawImage(s.field, 0, 0)
	dc.DrawImage(s.annotator.Surface().Image(), 0, 0)
	for _, m := range s.markers.Markers() {
		if h := s.markers.Handle(m.key()); h != nil {
			dc.DrawImageAnchored(h.sprite, int(m.X), int(m.Y), 0.5, 0.5)
		}
	}
	return frame
}

func (s *Session) endGestures() {
	dragged := s.markers.EndDrag()
	stroked := s.annotator.End()
	if dragged || stroked {
		s.touch()
	}
}

func (s *Session) isDoubleTap(key markerKey, at time.Time) bool {
	if !s.tap.set || s.tap.key != key {
		return false
	}
	d := at.Sub(s.tap.at)
	return d >= 0 && d <= s.doubleClick
}

func teamFor(mode Mode) Team {
	if mode == ModePlaceBlue {
		return TeamBlue
	}
	return TeamRed
}

func clampBrush(size float64) float64 {
	return clampRange(size, minBrushSize, maxBrushSize)
}

func clampSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
