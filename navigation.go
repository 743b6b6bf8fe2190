package main

// handleNavigation moves the keyboard pointer. While it is held down the move
// is fed to the board like a mouse drag.
func (m *model) handleNavigation(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.pointerHeld {
		m.session.PointerMove(m.boardPoint(m.cursorX, m.cursorY))
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorX >= m.boardCols() {
		m.cursorX = m.boardCols() - 1
	}
	if m.cursorY >= m.boardRows() {
		m.cursorY = m.boardRows() - 1
	}
}

// togglePointer presses or releases the keyboard pointer at the cursor.
func (m *model) togglePointer() {
	p := m.boardPoint(m.cursorX, m.cursorY)
	if m.pointerHeld {
		m.pointerHeld = false
		m.session.PointerUp(p)
		return
	}
	m.pointerHeld = true
	m.session.PointerDown(p, m.now())
	if !m.session.Markers().Dragging() && !m.session.Annotator().Active() {
		// Placing or removing a marker is a single click.
		m.pointerHeld = false
		m.session.PointerUp(p)
	}
}
