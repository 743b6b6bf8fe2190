package main

// toolState is the live selector state the annotator paints with.
type toolState interface {
	Mode() Mode
	Brush() Brush
}

// Annotator captures freehand strokes onto the annotation surface and keeps
// the history they can be replayed from.
type Annotator struct {
	tools   toolState
	surface *Surface
	history StrokeHistory
	current []Point
	active  bool
}

func NewAnnotator(tools toolState, width, height int) *Annotator {
	return &Annotator{
		tools:   tools,
		surface: NewSurface(width, height),
	}
}

func (a *Annotator) Surface() *Surface { return a.surface }

func (a *Annotator) History() []Stroke { return a.history.Strokes() }

func (a *Annotator) Active() bool { return a.active }

// Begin starts a stroke at p and paints its origin. It reports false when the
// current mode does not annotate.
func (a *Annotator) Begin(p Point) bool {
	mode := a.tools.Mode()
	if !mode.annotating() {
		return false
	}
	a.active = true
	a.current = []Point{p}
	a.paint(a.current, a.liveStroke(mode))
	return true
}

func (a *Annotator) Extend(p Point) {
	if !a.active {
		return
	}
	prev := a.current[len(a.current)-1]
	a.current = append(a.current, p)
	a.paint([]Point{prev, p}, a.liveStroke(a.tools.Mode()))
}

// End finalizes the stroke in progress, if it captured anything, and reports
// whether a stroke was added to the history.
func (a *Annotator) End() bool {
	if !a.active {
		return false
	}
	pts := a.current
	a.active = false
	a.current = nil
	if len(pts) == 0 {
		return false
	}
	s := a.liveStroke(a.tools.Mode())
	s.Points = append([]Point(nil), pts...)
	a.history.Push(s)
	return true
}

// ReplayAll repaints the surface from the history alone.
func (a *Annotator) ReplayAll() {
	a.surface.Clear()
	for _, s := range a.history.Strokes() {
		a.paint(s.Points, s)
	}
	a.surface.SetComposite(CompositeSourceOver)
}

func (a *Annotator) UndoLast() bool {
	if _, ok := a.history.Pop(); !ok {
		return false
	}
	a.ReplayAll()
	return true
}

// ClearAll drops the history and any stroke in progress.
func (a *Annotator) ClearAll() {
	a.history.Reset()
	a.active = false
	a.current = nil
	a.surface.Clear()
	a.surface.SetComposite(CompositeSourceOver)
}

// Resize swaps in a surface of the new size and replays onto it.
func (a *Annotator) Resize(width, height int) {
	a.surface = NewSurface(width, height)
	a.ReplayAll()
}

// liveStroke describes how input is painted right now. Any mode that is not
// erase paints.
func (a *Annotator) liveStroke(mode Mode) Stroke {
	b := a.tools.Brush()
	s := Stroke{Color: b.Color, Width: b.Size, Kind: StrokePaint}
	if mode == ModeErase {
		s.Kind = StrokeErase
	}
	return s
}

func (a *Annotator) paint(pts []Point, style Stroke) {
	if style.Kind == StrokeErase {
		a.surface.SetComposite(CompositeDestinationOut)
	} else {
		a.surface.SetComposite(CompositeSourceOver)
	}
	a.surface.StrokePath(pts, style.Color, style.lineWidth())
}
