package main

// StrokeHistory is the ordered list of finalized strokes. It only grows at the
// end and only shrinks from the end, except for Reset.
type StrokeHistory struct {
	strokes []Stroke
}

func (h *StrokeHistory) Push(s Stroke) {
	h.strokes = append(h.strokes, s)
}

func (h *StrokeHistory) Pop() (Stroke, bool) {
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	lastIndex := len(h.strokes) - 1
	s := h.strokes[lastIndex]
	h.strokes[lastIndex] = Stroke{}
	h.strokes = h.strokes[:lastIndex]
	return s, true
}

func (h *StrokeHistory) Len() int { return len(h.strokes) }

// Strokes returns the history in paint order. Callers must not modify it.
func (h *StrokeHistory) Strokes() []Stroke { return h.strokes }

func (h *StrokeHistory) Reset() {
	h.strokes = nil
}
