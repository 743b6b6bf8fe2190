package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type toolbarAction int

const (
	toolSelectMode toolbarAction = iota
	toolUndo
	toolClear
	toolColor
	toolSize
)

type toolbarButton struct {
	label  string
	action toolbarAction
	mode   Mode
	x0, x1 int // columns, x1 exclusive
}

var (
	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	activeButtonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
)

// toolbarButtons lays the toolbar out left to right. Rendering and mouse
// hit-testing both use it, so the spans always agree.
func (m model) toolbarButtons() []toolbarButton {
	b := m.session.Brush()
	buttons := []toolbarButton{
		{label: " 1 Red ", action: toolSelectMode, mode: ModePlaceRed},
		{label: " 2 Blue ", action: toolSelectMode, mode: ModePlaceBlue},
		{label: " 3 Draw ", action: toolSelectMode, mode: ModeDraw},
		{label: " 4 Erase ", action: toolSelectMode, mode: ModeErase},
		{label: " u Undo ", action: toolUndo},
		{label: " C Clear ", action: toolClear},
		{label: " c ■ ", action: toolColor},
		{label: fmt.Sprintf(" [] %dpx ", int(b.Size)), action: toolSize},
	}
	x := 0
	for i := range buttons {
		buttons[i].x0 = x
		buttons[i].x1 = x + lipgloss.Width(buttons[i].label)
		x = buttons[i].x1 + 1
	}
	return buttons
}

func buttonAt(buttons []toolbarButton, x int) (toolbarButton, bool) {
	for _, b := range buttons {
		if x >= b.x0 && x < b.x1 {
			return b, true
		}
	}
	return toolbarButton{}, false
}

func (m model) renderToolbar() string {
	active := m.session.Affordance().Active
	var sb strings.Builder
	for i, b := range m.toolbarButtons() {
		if i > 0 {
			sb.WriteString(" ")
		}
		style := buttonStyle
		if b.action == toolSelectMode && b.mode == active {
			style = activeButtonStyle
		}
		if b.action == toolColor {
			c := m.session.Brush().Color
			style = style.Foreground(lipgloss.Color(hexColor(c.R, c.G, c.B)))
		}
		sb.WriteString(style.Render(b.label))
	}
	return sb.String()
}

// clickToolbar runs the button under column x.
func (m *model) clickToolbar(x int) {
	b, ok := buttonAt(m.toolbarButtons(), x)
	if !ok {
		return
	}
	switch b.action {
	case toolSelectMode:
		m.session.SetMode(b.mode)
	case toolUndo:
		m.session.Undo()
	case toolClear:
		m.requestConfirm(ConfirmClear)
	case toolColor:
		m.cycleColor()
	case toolSize:
		size := int(m.session.Brush().Size) + 1
		if size > maxBrushSize {
			size = minBrushSize
		}
		m.session.SetBrushSize(float64(size))
	}
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
