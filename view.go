package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	modeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	confirmStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("231"))
	heldStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160"))
)

func (m model) boardCols() int {
	if m.width < 1 {
		return 1
	}
	return m.width
}

func (m model) boardRows() int {
	rows := m.height - toolbarRows - statusRows
	if rows < 1 {
		return 1
	}
	return rows
}

// surfaceSize is the pixel size of the board for the current terminal size.
func (m model) surfaceSize() (int, int) {
	return m.boardCols() * m.config.CellWidth, m.boardRows() * m.config.CellHeight
}

// boardPoint is the surface pixel at the middle of a board cell.
func (m model) boardPoint(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * float64(m.config.CellWidth),
		Y: (float64(row) + 0.5) * float64(m.config.CellHeight),
	}
}

func (m model) pointCell(p Point) (int, int) {
	return int(p.X) / m.config.CellWidth, int(p.Y) / m.config.CellHeight
}

// boardCells renders the board as one styled half-block per cell, each cell
// showing two vertically stacked samples of the frame.
func (m model) boardCells() [][]string {
	cols, rows := m.boardCols(), m.boardRows()
	rev := m.session.Revision()
	if m.cache != nil && m.cache.filled && m.cache.rev == rev && m.cache.cols == cols && m.cache.rows == rows {
		return m.cache.cells
	}

	frame := m.session.Frame()
	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.BiLinear.Scale(small, small.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	cells := make([][]string, rows)
	for y := 0; y < rows; y++ {
		row := make([]string, cols)
		for x := 0; x < cols; x++ {
			top := small.RGBAAt(x, 2*y)
			bottom := small.RGBAAt(x, 2*y+1)
			row[x] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top.R, top.G, top.B))).
				Background(lipgloss.Color(hexColor(bottom.R, bottom.G, bottom.B))).
				Render("▀")
		}
		cells[y] = row
	}

	for _, mk := range m.session.Markers().Markers() {
		h := m.session.Markers().Handle(mk.key())
		if h == nil {
			continue
		}
		c := teamColors[mk.Team]
		style := lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color(hexColor(c.R, c.G, c.B)))
		cx, cy := m.pointCell(Point{X: mk.X, Y: mk.Y})
		if cy < 0 || cy >= rows {
			continue
		}
		start := cx - (len(h.label)-1)/2
		for i, r := range h.label {
			if x := start + i; x >= 0 && x < cols {
				cells[cy][x] = style.Render(string(r))
			}
		}
	}

	if m.cache != nil {
		*m.cache = boardCache{rev: rev, cols: cols, rows: rows, cells: cells, filled: true}
	}
	return cells
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	result.WriteString(m.renderToolbar())
	result.WriteString("\n")

	cursor := "◇"
	if m.session.Affordance().Cursor == CursorCrosshair {
		cursor = "+"
	}
	style := cursorStyle
	if m.pointerHeld {
		style = heldStyle
	}

	for y, row := range m.boardCells() {
		for x, cell := range row {
			if x == m.cursorX && y == m.cursorY {
				result.WriteString(style.Render(cursor))
				continue
			}
			result.WriteString(cell)
		}
		result.WriteString("\n")
	}

	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	if m.confirming {
		return confirmStyle.Render(m.confirmPrompt())
	}

	s := m.session
	b := s.Brush()
	mk := s.Markers()
	text := fmt.Sprintf(" %s  %dpx  red %d  blue %d  strokes %d ",
		hexColor(b.Color.R, b.Color.G, b.Color.B), int(b.Size),
		mk.Count(TeamRed), mk.Count(TeamBlue), len(s.Annotator().History()))

	line := modeStyle.Render(" "+s.Mode().String()+" ") + statusStyle.Render(text)
	switch {
	case m.errorMessage != "":
		line += " " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		line += " " + successStyle.Render(m.successMessage)
	default:
		line += statusStyle.Render(" ? help ")
	}
	return lipgloss.NewStyle().MaxWidth(m.boardCols()).Render(line)
}

func (m model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmClear:
		return "Clear all markers and drawings? (y/n)"
	case ConfirmQuit:
		return "Quit and lose this board? (y/n)"
	default:
		return "Are you sure? (y/n)"
	}
}

var helpLines = []string{
	"pitchboard Help",
	"===============",
	"",
	"Modes:",
	"------",
	"  1 / r            Place red players",
	"  2 / b            Place blue players",
	"  3 / d            Draw",
	"  4 / e            Erase",
	"",
	"Players (red/blue mode):",
	"------------------------",
	"  click            Place a player, or grab one to drag it",
	"  double click     Remove a player (any mode)",
	"  x                Remove the player under the cursor (any mode)",
	"",
	"Drawing:",
	"--------",
	"  drag             Draw or erase (erasing uses a 3x wider nib)",
	"  c                Next color",
	"  [ / ]            Smaller / bigger brush",
	"  u                Undo last stroke",
	"  C                Clear the board",
	"",
	"Keyboard pointer:",
	"-----------------",
	"  h/←/j/↓/k/↑/l/→  Move the pointer",
	"  Shift+h/j/k/l    Move the pointer 2x faster",
	"  space            Press / release the pointer",
	"",
	"Other:",
	"------",
	"  p                Export PNG (path is copied to the clipboard)",
	"  ?                Toggle help",
	"  q                Quit",
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = len(helpLines)
	}
	start := m.helpScroll
	if start > len(helpLines)-1 {
		start = len(helpLines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	var result strings.Builder
	for _, line := range helpLines[start:end] {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(statusStyle.Render(" j/k scroll  ? or esc close "))
	return result.String()
}
